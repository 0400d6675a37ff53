package locale

import "golang.org/x/text/language"

// Code is a supported locale of the site. The set is closed.
type Code uint8

// Locale table. Declaration order is the order of All().
const (
	PT Code = iota
	EN

	count
)

// NumCodes is the size of the locale table, for arrays indexed by Code.
const NumCodes = int(count)

// Default is the locale unprefixed paths are redirected to.
const Default = PT

var codes = [count]string{
	PT: "pt",
	EN: "en",
}

var tags = [count]language.Tag{
	PT: language.Portuguese,
	EN: language.English,
}

// All returns every supported code in declaration order.
func All() []Code {
	out := make([]Code, 0, count)
	for c := Code(0); c < count; c++ {
		out = append(out, c)
	}
	return out
}

// Parse resolves a path segment to a Code. Matching is exact: "PT" and "p" are not codes.
func Parse(s string) (Code, bool) {
	for c := Code(0); c < count; c++ {
		if codes[c] == s {
			return c, true
		}
	}
	return Default, false
}

// IsValid reports whether c belongs to the locale table.
func (c Code) IsValid() bool { return c < count }

// String returns the path segment for c, or the default's segment for an unknown value.
func (c Code) String() string {
	if !c.IsValid() {
		return codes[Default]
	}
	return codes[c]
}

// Tag returns the BCP 47 tag used for Content-Language.
func (c Code) Tag() language.Tag {
	if !c.IsValid() {
		return tags[Default]
	}
	return tags[c]
}

// Prefix returns "/<code>".
func (c Code) Prefix() string { return "/" + c.String() }

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
