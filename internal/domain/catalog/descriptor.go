package catalog

// Descriptor describes one documentation page for search (immutable value object).
type Descriptor struct {
	title       string
	description string
	path        string
	category    string
	keywords    []string
}

// New creates a Descriptor. keywords is copied.
func New(title, description, path, category string, keywords []string) Descriptor {
	return Descriptor{
		title:       title,
		description: description,
		path:        path,
		category:    category,
		keywords:    cloneStrings(keywords),
	}
}

// Title returns the page title.
func (d Descriptor) Title() string { return d.title }

// Description returns the one-line summary.
func (d Descriptor) Description() string { return d.description }

// Path returns the absolute, locale-qualified route.
func (d Descriptor) Path() string { return d.path }

// Category returns the sidebar group.
func (d Descriptor) Category() string { return d.category }

// Keywords returns a copy of the match-only tags.
func (d Descriptor) Keywords() []string { return cloneStrings(d.keywords) }

// EachKeyword calls fn for every keyword until fn returns true.
// Reports whether fn stopped the iteration.
func (d Descriptor) EachKeyword(fn func(string) bool) bool {
	for _, k := range d.keywords {
		if fn(k) {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
