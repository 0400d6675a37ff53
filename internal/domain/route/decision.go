package route

// Kind distinguishes the two routing outcomes.
type Kind uint8

// Routing outcomes.
const (
	KindPassThrough Kind = iota
	KindRedirect
)

// Decision is the outcome of routing a request path: pass through, or redirect to Target.
type Decision struct {
	kind   Kind
	target string
}

// PassThrough serves the request path unchanged.
func PassThrough() Decision { return Decision{kind: KindPassThrough} }

// RedirectTo instructs the client to re-request target.
func RedirectTo(target string) Decision { return Decision{kind: KindRedirect, target: target} }

// Kind returns the outcome kind.
func (d Decision) Kind() Kind { return d.kind }

// IsRedirect reports whether the decision is a redirect.
func (d Decision) IsRedirect() bool { return d.kind == KindRedirect }

// Target returns the redirect location; empty for pass-through.
func (d Decision) Target() string { return d.target }

func (d Decision) String() string {
	if d.IsRedirect() {
		return "redirect " + d.target
	}
	return "pass-through"
}
