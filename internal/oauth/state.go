package oauth

import (
	"crypto/subtle"

	"github.com/google/uuid"
)

// GenerateState returns an unguessable value for the authorize state
// parameter.
func GenerateState() string {
	return uuid.NewString()
}

func ValidateState(expected string, received string) bool {
	return expected != "" && subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}
