// Package permalink renders post URLs from RFC 6570 URI templates.
//
// Templates may reference {id}, {slug}, {year}, {month}, {day}, {type}
// and {parent}, for example "https://example.com/{year}/{month}/{slug}/".
package permalink

import (
	"fmt"
	"strconv"

	"github.com/yosida95/uritemplate/v3"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

var _ driven.Permalinker = (*Template)(nil)

// Template builds permalinks from a URI template.
type Template struct {
	tmpl *uritemplate.Template
}

// New parses a permalink template.
func New(pattern string) (*Template, error) {
	if pattern == "" {
		pattern = domain.DefaultPermalink
	}
	tmpl, err := uritemplate.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: permalink template %q: %v", domain.ErrInvalidInput, pattern, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Permalink expands the template for p. Expansion failures yield "".
func (t *Template) Permalink(p *domain.Post) string {
	if p == nil {
		return ""
	}

	date := p.Date.UTC()
	slug := p.Name
	if slug == "" {
		slug = strconv.FormatInt(p.ID, 10)
	}

	vals := uritemplate.Values{}
	vals.Set("id", uritemplate.String(strconv.FormatInt(p.ID, 10)))
	vals.Set("slug", uritemplate.String(slug))
	vals.Set("year", uritemplate.String(date.Format("2006")))
	vals.Set("month", uritemplate.String(date.Format("01")))
	vals.Set("day", uritemplate.String(date.Format("02")))
	vals.Set("type", uritemplate.String(p.Type))
	vals.Set("parent", uritemplate.String(strconv.FormatInt(p.ParentID, 10)))

	out, err := t.tmpl.Expand(vals)
	if err != nil {
		return ""
	}
	return out
}

// Varnames lists the variables the template references.
func (t *Template) Varnames() []string {
	return t.tmpl.Varnames()
}
