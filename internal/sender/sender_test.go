package sender

import (
	"strings"
	"testing"
)

func TestFromHeader(t *testing.T) {
	msg := "From: Alice <a@x.com>\r\nTo: bob@y.com\r\n\r\nbody\r\n"
	got, ok := FromHeader(strings.NewReader(msg))
	if !ok {
		t.Fatal("FromHeader found nothing")
	}
	if want := "Alice <a@x.com>"; got != want {
		t.Errorf("FromHeader = %q, want %q", got, want)
	}
}

func TestFromHeader_MissingFrom(t *testing.T) {
	msg := "To: bob@y.com\r\nSubject: hi\r\n\r\nbody\r\n"
	if got, ok := FromHeader(strings.NewReader(msg)); ok {
		t.Fatalf("FromHeader = %q, want none", got)
	}
}

func TestFromHeader_CaseSensitiveFieldName(t *testing.T) {
	msg := "FROM: Alice <a@x.com>\r\n\r\nbody\r\n"
	if got, ok := FromHeader(strings.NewReader(msg)); ok {
		t.Fatalf("FromHeader matched %q for FROM, want case-sensitive miss", got)
	}
}

// Only the exactly-named field counts, even when differently-cased
// variants share its canonical form.
func TestFromHeader_ExactNameAmongCaseVariants(t *testing.T) {
	msg := "FROM: wrong@x.com\r\nfrom: also-wrong@x.com\r\nFrom: Alice <a@x.com>\r\n\r\nbody\r\n"
	got, ok := FromHeader(strings.NewReader(msg))
	if !ok {
		t.Fatal("FromHeader found nothing")
	}
	if want := "Alice <a@x.com>"; got != want {
		t.Errorf("FromHeader = %q, want %q", got, want)
	}
}

func TestFromHeader_Malformed(t *testing.T) {
	msg := "this is not a header line\r\nFrom: Alice <a@x.com>\r\n\r\n"
	if got, ok := FromHeader(strings.NewReader(msg)); ok {
		t.Fatalf("FromHeader = %q on malformed input, want none", got)
	}
}

func TestFromHeader_Empty(t *testing.T) {
	if got, ok := FromHeader(strings.NewReader("")); ok {
		t.Fatalf("FromHeader = %q on empty input, want none", got)
	}
}

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		value string
		name  string
		email string
	}{
		{"Alice <a@x.com>", "Alice", "a@x.com"},
		{"Alice Example <a@x.com>", "Alice Example", "a@x.com"},
		{"a@x.com", "", "a@x.com"},
		{"<a@x.com>", "", "a@x.com"},
		{"  Alice <a@x.com>  ", "Alice", "a@x.com"},
		{"", "", ""},
	}
	for _, tt := range tests {
		name, email := SplitAddress(tt.value)
		if name != tt.name || email != tt.email {
			t.Errorf("SplitAddress(%q) = (%q, %q), want (%q, %q)",
				tt.value, name, email, tt.name, tt.email)
		}
	}
}

// The last-space heuristic mis-parses quoted names that put spaces after
// the address token. Pinned here so a future change to real address
// parsing is a conscious one.
func TestSplitAddress_HeuristicLimitation(t *testing.T) {
	name, email := SplitAddress("\"Example, Alice\" <a@x.com> (work)")
	if email == "a@x.com" {
		t.Errorf("heuristic unexpectedly parsed a trailing comment; name=%q email=%q", name, email)
	}
	if email != "(work)" {
		t.Errorf("SplitAddress trailing token = %q, want %q", email, "(work)")
	}
}
