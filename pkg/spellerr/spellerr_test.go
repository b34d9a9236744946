package spellerr

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"not found", NotFound("en_US.dic", nil), "file not found: en_US.dic"},
		{"bad format", BadFormat("en_US.aff", 12, "malformed rule body"), "parse error at en_US.aff:12: malformed rule body"},
		{"bad config", BadConfig("backend path required"), "configuration error: backend path required"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NotFound("/etc/dict", cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find wrapped cause")
	}
}
