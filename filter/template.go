package filter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/0xalexb/hjarta-config/property"

	"github.com/Masterminds/sprig/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTemplateCacheSize is the number of compiled templates kept by a Template filter.
const DefaultTemplateCacheSize = 256

// Template renders values containing "{{" as Go templates with the sprig function
// library. The template data exposes the evaluation:
//
//	{{ .Key }}                  key being filtered
//	{{ .Prop "db.host" }}       another raw entry (snapshot, then owning configuration)
//	{{ env "HOME" | upper }}    any sprig function
//
// Compiled templates are cached by their source text.
type Template struct {
	cache *lru.Cache[string, *template.Template]
}

// NewTemplate creates the filter with a cache of the given size
// (DefaultTemplateCacheSize when size < 1).
func NewTemplate(size int) (*Template, error) {
	if size < 1 {
		size = DefaultTemplateCacheSize
	}

	cache, err := lru.New[string, *template.Template](size)
	if err != nil {
		return nil, fmt.Errorf("creating template cache: %w", err)
	}

	return &Template{cache: cache}, nil
}

// Filter implements Filter.
func (t *Template) Filter(value *property.Value, fc *Context) (*property.Value, error) {
	raw := value.Value()
	if !strings.Contains(raw, "{{") {
		return value, nil
	}

	tmpl, err := t.compile(raw)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, templateData{fc: fc, key: value.Key()})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	if buf.String() == raw {
		return value, nil
	}

	return value.WithValue(buf.String()), nil
}

func (t *Template) compile(text string) (*template.Template, error) {
	if tmpl, ok := t.cache.Get(text); ok {
		return tmpl, nil
	}

	tmpl, err := template.New("value").Option("missingkey=error").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	t.cache.Add(text, tmpl)

	return tmpl, nil
}

// Name implements Named.
func (t *Template) Name() string {
	return "template"
}

// Description implements Described.
func (t *Template) Description() string {
	return "renders {{ }} templates with sprig functions"
}

type templateData struct {
	fc  *Context
	key string
}

// Key returns the key being filtered.
func (d templateData) Key() string {
	return d.key
}

// Prop returns another raw entry.
func (d templateData) Prop(key string) (string, error) {
	value, ok := lookup(d.fc, key)
	if !ok {
		return "", fmt.Errorf("%w: %s", property.ErrKeyNotFound, key)
	}

	return value, nil
}
