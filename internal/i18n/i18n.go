package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator resolves dotted keys against per-language tables
type Translator struct {
	tables   map[string]map[string]any
	fallback string
}

// New loads the bundled tables. Lookups that miss in the requested language fall back to
// defaultLang.
func New(defaultLang string) (*Translator, error) {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	return Load(sub, defaultLang)
}

// Load reads every <lang>.yaml file at the root of fsys
func Load(fsys fs.FS, defaultLang string) (*Translator, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list tables: %w", err)
	}

	tables := make(map[string]map[string]any, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", f, err)
		}
		table := map[string]any{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", f, err)
		}
		tables[strings.TrimSuffix(path.Base(f), ".yaml")] = table
	}
	if _, ok := tables[defaultLang]; !ok {
		return nil, fmt.Errorf("i18n: no table for default language %q", defaultLang)
	}

	utils.Debug("translation tables loaded", map[string]any{"languages": len(tables), "default": defaultLang})
	return &Translator{tables: tables, fallback: defaultLang}, nil
}

// T returns the string at the dotted key for lang. A miss falls back to the default language,
// then to the key itself.
func (t *Translator) T(lang, key string) string {
	if s, ok := lookup(t.tables[normalize(lang)], key); ok {
		return s
	}
	if s, ok := lookup(t.tables[t.fallback], key); ok {
		return s
	}
	return key
}

// Languages lists the available table names in order
func (t *Translator) Languages() []string {
	out := make([]string, 0, len(t.tables))
	for lang := range t.tables {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// normalize reduces a tag such as "fr-CI" to its base language
func normalize(lang string) string {
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return lang[:i]
	}
	return lang
}

func lookup(table map[string]any, key string) (string, bool) {
	if table == nil || key == "" {
		return "", false
	}
	var node any = table
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}
