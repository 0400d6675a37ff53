package route

import "testing"

func TestPassThrough(t *testing.T) {
	d := PassThrough()
	if d.IsRedirect() || d.Kind() != KindPassThrough {
		t.Errorf("PassThrough() = %v", d)
	}
	if d.Target() != "" {
		t.Errorf("Target() = %q, want empty", d.Target())
	}
}

func TestRedirectTo(t *testing.T) {
	d := RedirectTo("/pt/docs")
	if !d.IsRedirect() || d.Kind() != KindRedirect {
		t.Errorf("RedirectTo() = %v", d)
	}
	if d.Target() != "/pt/docs" {
		t.Errorf("Target() = %q", d.Target())
	}
	if d.String() != "redirect /pt/docs" {
		t.Errorf("String() = %q", d.String())
	}
}
