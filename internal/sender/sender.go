// Package sender extracts the originator of a raw email message: the
// From header value and a best-effort split into display name and
// address.
package sender

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-message/textproto"
)

// fromField is matched case-sensitively against header field names as
// they appear in the message.
const fromField = "From"

// FromHeader reads the header block of the message in r and returns the
// value of its first From field. It reports false if the message has no
// From field or the header block is malformed.
func FromHeader(r io.Reader) (string, bool) {
	header, err := textproto.ReadHeader(bufio.NewReader(r))
	if err != nil {
		return "", false
	}

	// Key() canonicalizes field names ("FROM" comes back as "From"), so
	// the as-written name is taken from the raw field bytes instead.
	fields := header.Fields()
	for fields.Next() {
		raw, err := fields.Raw()
		if err != nil {
			continue
		}
		colon := bytes.IndexByte(raw, ':')
		if colon < 0 {
			continue
		}
		if string(raw[:colon]) == fromField {
			return fields.Value(), true
		}
	}
	return "", false
}

// SplitAddress splits a From header value into a display name and an
// email address. The token after the last space is taken as the address
// candidate, with one leading '<' and one trailing '>' stripped; the
// rest, trimmed, is the display name. A value with no space is all
// address and no name.
//
// This is a heuristic, not an RFC 5322 address parse: quoted display
// names or comments containing spaces around the address token are
// split wrong. Matching on the address still works for the common
// "Name <addr>" and bare-address forms.
func SplitAddress(value string) (name, email string) {
	value = strings.TrimSpace(value)
	i := strings.LastIndex(value, " ")
	if i < 0 {
		return "", stripAngles(value)
	}
	return strings.TrimSpace(value[:i]), stripAngles(value[i+1:])
}

// stripAngles removes one pair of angle brackets around an address token.
func stripAngles(s string) string {
	s = strings.TrimPrefix(s, "<")
	return strings.TrimSuffix(s, ">")
}
