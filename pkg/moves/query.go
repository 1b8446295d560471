package moves

import (
	"net/url"
	"strings"
)

// query is an insertion-ordered, multi-valued query string. url.Values
// sorts keys on Encode, which would reorder the parameters the API
// documents.
type query struct {
	keys   []string
	values map[string][]string
}

func newQuery() *query {
	return &query{values: make(map[string][]string)}
}

// set keeps the position of an existing key and replaces all of its values.
func (q *query) set(key string, value string) *query {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = []string{value}
	return q
}

func (q *query) setIf(key string, value string) *query {
	if value == "" {
		return q
	}
	return q.set(key, value)
}

// add appends value to key. A repeated key stays at its first position.
func (q *query) add(key string, value string) *query {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = append(q.values[key], value)
	return q
}

// merge copies raw query pairs in their original order. Repeated keys keep
// every value. Invalid escapes are kept literally.
func (q *query) merge(raw string) *query {
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		q.add(unescape(key), unescape(value))
	}
	return q
}

func (q *query) encode() string {
	var b strings.Builder
	for _, k := range q.keys {
		for _, v := range q.values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escape(k))
			b.WriteByte('=')
			b.WriteString(escape(v))
		}
	}
	return b.String()
}

// unescape decodes s like url.QueryUnescape. On an invalid escape it decodes
// what it can and keeps each bad '%' as a literal byte.
func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b = append(b, ' ')
		case c == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			b = append(b, c)
		}
	}
	return string(b)
}

// escape percent-encodes every byte outside A-Z a-z 0-9 and -_.!~*'().
// Spaces become %20.
func escape(s string) string {
	const upperhex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
