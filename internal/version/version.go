package version

import (
	"runtime/debug"
	"sync"
)

const (
	develVersion = "devel"
	product      = "moves-go"
)

// version is overridden with -ldflags "-X .../internal/version.version=v1.2.3".
var version = develVersion

var resolve sync.Once

// Get returns the build version, falling back to the module version
// recorded by go install.
func Get() string {
	resolve.Do(func() {
		if version != develVersion {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "(devel)" {
			version = v
		}
	})
	return version
}

// UserAgent identifies this client to the Moves API.
func UserAgent() string {
	return product + "/" + Get()
}
