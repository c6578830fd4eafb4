package oauth1

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes s according to RFC 3986. Every byte outside
// the unreserved set [A-Za-z0-9-._~] is replaced by its uppercase %XX
// form, regardless of its meaning in a URL component. Signing needs a
// byte-exact canonical form, so this is stricter than net/url.
func Encode(s string) string {
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
		b.WriteByte(upperhex[c&0x0F])
	}

	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
