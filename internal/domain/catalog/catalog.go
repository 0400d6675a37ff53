package catalog

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
)

// entry is a catalog row before it is bound to a locale.
type entry struct {
	slug     string
	text     [locale.NumCodes]localized // indexed by locale.Code
	keywords []string
}

type localized struct {
	title       string
	description string
	category    string
}

var entries = []entry{
	{
		slug: "installation",
		text: [locale.NumCodes]localized{
			locale.PT: {"Instalação", "Guia completo de instalação em diferentes ambientes", "Primeiros Passos"},
			locale.EN: {"Installation", "Complete installation guide for different environments", "Getting Started"},
		},
		keywords: []string{"install", "setup", "node", "python", "docker"},
	},
	{
		slug: "configuration",
		text: [locale.NumCodes]localized{
			locale.PT: {"Configuração", "Configurações avançadas e personalização", "Primeiros Passos"},
			locale.EN: {"Configuration", "Advanced settings and customization", "Getting Started"},
		},
		keywords: []string{"config", "settings", "environment", "env"},
	},
	{
		slug: "api-reference",
		text: [locale.NumCodes]localized{
			locale.PT: {"API Reference", "Documentação completa da API REST", "Desenvolvimento"},
			locale.EN: {"API Reference", "Complete REST API documentation", "Development"},
		},
		keywords: []string{"api", "endpoints", "rest", "authentication", "jwt"},
	},
	{
		slug: "development",
		text: [locale.NumCodes]localized{
			locale.PT: {"Desenvolvimento", "Guia completo para desenvolvedores", "Desenvolvimento"},
			locale.EN: {"Development", "Complete guide for developers", "Development"},
		},
		keywords: []string{"development", "coding", "typescript", "python", "testing"},
	},
	{
		slug: "deployment",
		text: [locale.NumCodes]localized{
			locale.PT: {"Deployment", "Guias de deploy para diferentes ambientes", "Deploy"},
			locale.EN: {"Deployment", "Deployment guides for different environments", "Deploy"},
		},
		keywords: []string{"deploy", "production", "docker", "aws", "cloud"},
	},
	{
		slug: "security",
		text: [locale.NumCodes]localized{
			locale.PT: {"Segurança", "Práticas de segurança e implementações", "Deploy"},
			locale.EN: {"Security", "Security practices and implementations", "Deploy"},
		},
		keywords: []string{"security", "encryption", "2fa", "authentication", "ssl"},
	},
	{
		slug: "troubleshooting",
		text: [locale.NumCodes]localized{
			locale.PT: {"Solução de Problemas", "Problemas comuns e soluções", "Suporte"},
			locale.EN: {"Troubleshooting", "Common problems and solutions", "Support"},
		},
		keywords: []string{"troubleshooting", "problems", "errors", "debug", "fix"},
	},
	{
		slug: "contributing",
		text: [locale.NumCodes]localized{
			locale.PT: {"Contribuição", "Como contribuir com o projeto", "Desenvolvimento"},
			locale.EN: {"Contributing", "How to contribute to the project", "Development"},
		},
		keywords: []string{"contributing", "pull request", "github", "open source"},
	},
}

// Built once at init, read-only afterwards.
var catalogs = build()

func build() map[locale.Code][]Descriptor {
	out := make(map[locale.Code][]Descriptor, len(locale.All()))
	for _, code := range locale.All() {
		docs := make([]Descriptor, 0, len(entries))
		for _, e := range entries {
			t := e.text[code]
			docs = append(docs, New(t.title, t.description, code.Prefix()+"/docs/"+e.slug, t.category, e.keywords))
		}
		out[code] = docs
	}
	return out
}

// For returns the catalog of code in declaration order.
// The slice is a copy; invalid codes get the default locale's catalog.
func For(code locale.Code) []Descriptor {
	if !code.IsValid() {
		code = locale.Default
	}
	src := catalogs[code]
	out := make([]Descriptor, len(src))
	copy(out, src)
	return out
}

// Lookup finds the descriptor whose path equals path.
func Lookup(path string) (Descriptor, bool) {
	for _, code := range locale.All() {
		for _, d := range catalogs[code] {
			if d.path == path {
				return d, true
			}
		}
	}
	return Descriptor{}, false
}

// Validate checks the catalog invariants: every locale has a non-empty catalog
// and every path starts with its locale segment.
func Validate() error {
	for _, code := range locale.All() {
		docs := catalogs[code]
		if len(docs) == 0 {
			return fmt.Errorf("catalog for %s is empty", code)
		}
		for _, d := range docs {
			if !strings.HasPrefix(d.path, code.Prefix()+"/") {
				return fmt.Errorf("catalog path %q lacks locale %s", d.path, code)
			}
		}
	}
	return nil
}
