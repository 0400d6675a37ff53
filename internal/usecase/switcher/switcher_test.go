package switcher

import (
	"testing"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
)

func TestSwitch(t *testing.T) {
	tests := []struct {
		path   string
		target locale.Code
		want   string
	}{
		{"/en/docs/installation", locale.PT, "/pt/docs/installation"},
		{"/en", locale.PT, "/pt"},
		{"/pt/docs/api-reference", locale.EN, "/en/docs/api-reference"},
		{"/pt/", locale.EN, "/en/"},
		{"/pt/docs/", locale.PT, "/pt/docs/"},
		{"/", locale.EN, "/en"},
		{"", locale.EN, "/en"},
		{"/docs/installation", locale.EN, "/en/installation"},
	}
	for _, tc := range tests {
		got := Switch(tc.path, tc.target)
		if got != tc.want {
			t.Errorf("Switch(%q, %s) = %q, want %q", tc.path, tc.target, got, tc.want)
		}
	}
}

func TestSwitch_RoundTrip(t *testing.T) {
	p := "/en/docs/deployment"
	if got := Switch(Switch(p, locale.PT), locale.EN); got != p {
		t.Errorf("round trip = %q, want %q", got, p)
	}
}
