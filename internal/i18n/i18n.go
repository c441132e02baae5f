// Package i18n resolves dashboard strings and number formats for the
// supported locales. Catalogs are embedded YAML files flattened to dotted keys.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	DefaultLocale = English
)

// ParseLocale maps a request value such as "ar" or "ar-SA" onto a supported
// locale, defaulting to English.
func ParseLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()
	switch base.String() {
	case string(Arabic):
		return Arabic
	default:
		return English
	}
}

// Direction returns the text direction of the locale ("rtl" or "ltr").
func (l Locale) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Locale) tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Catalog holds the strings of one locale.
type Catalog struct {
	locale   Locale
	messages map[string]string
	printer  *message.Printer
}

// Lookup returns the string stored under key.
func (c *Catalog) Lookup(key string) (string, bool) {
	v, ok := c.messages[key]
	return v, ok
}

// T returns the string stored under key, or the key itself when missing.
func (c *Catalog) T(key string) string {
	if v, ok := c.messages[key]; ok {
		return v
	}
	return key
}

func (c *Catalog) Locale() Locale { return c.locale }

// FormatInt formats n with the locale's digit grouping.
func (c *Catalog) FormatInt(n int) string {
	return c.printer.Sprintf("%d", n)
}

// Keys returns all message keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bundle holds a catalog per supported locale.
type Bundle struct {
	catalogs map[Locale]*Catalog
}

// NewBundle loads every embedded catalog.
func NewBundle() (*Bundle, error) {
	b := &Bundle{catalogs: make(map[Locale]*Catalog)}
	for _, l := range []Locale{English, Arabic} {
		c, err := load(l)
		if err != nil {
			return nil, err
		}
		b.catalogs[l] = c
	}
	return b, nil
}

// Catalog returns the catalog for l, falling back to the default locale.
func (b *Bundle) Catalog(l Locale) *Catalog {
	if c, ok := b.catalogs[l]; ok {
		return c
	}
	return b.catalogs[DefaultLocale]
}

func load(l Locale) (*Catalog, error) {
	data, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read %s catalog: %w", l, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", l, err)
	}

	messages := make(map[string]string)
	flatten("", tree, messages)

	return &Catalog{
		locale:   l,
		messages: messages,
		printer:  message.NewPrinter(l.tag()),
	}, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = strings.TrimSpace(fmt.Sprint(val))
		}
	}
}
