// Package i18n resolves display strings by dotted key, e.g.
// "metadata.owner.name".
package i18n

import (
	"embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yaml
var translations embed.FS

// DefaultLocale is the locale shipped with the site.
const DefaultLocale = "en"

// Translator resolves a dotted key to a display string.
type Translator interface {
	Resolve(key string) string
}

// Func adapts a plain function to Translator.
type Func func(key string) string

// Resolve calls f(key).
func (f Func) Resolve(key string) string { return f(key) }

// Table is a static translation table keyed by dotted path.
// Unknown keys resolve to themselves.
type Table struct {
	entries map[string]string
}

// NewTable builds a Table from flat dotted-key entries.
func NewTable(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Load reads a nested YAML document and flattens it into a Table.
func Load(r io.Reader) (*Table, error) {
	var tree map[string]any
	if err := yaml.NewDecoder(r).Decode(&tree); err != nil {
		if err == io.EOF {
			return NewTable(nil), nil
		}
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	entries := make(map[string]string)
	if err := flatten("", tree, entries); err != nil {
		return nil, err
	}
	return &Table{entries: entries}, nil
}

// Locale loads the embedded table for locale.
func Locale(locale string) (*Table, error) {
	f, err := translations.Open("translations/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded English table. It panics if the embedded
// file is broken, which only a bad build can cause.
func Default() *Table {
	t, err := Locale(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return t
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case nil:
			out[key] = ""
		case []any:
			return fmt.Errorf("translation %q: lists are not supported", key)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// Resolve returns the translation for key, or key itself when unknown.
func (t *Table) Resolve(key string) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	return key
}

// Has reports whether key is defined.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys returns every defined key in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
