package catalog

import (
	"fmt"
	"strings"
)

// Translation identifies one text source of the API.
type Translation struct {
	Name      string `json:"name" mapstructure:"name"`
	ModuleID  int    `json:"moduleId" mapstructure:"module_id"`
	ShortName string `json:"shortName" mapstructure:"short_name"`
	// RightToLeft marks modules whose text is laid out right to left.
	RightToLeft bool `json:"rtl" mapstructure:"rtl"`
}

// Catalog is the fixed, ordered list of translations available at runtime.
type Catalog struct {
	translations []Translation
}

// DefaultTranslations is the built-in catalog used when the config file has none.
var DefaultTranslations = []Translation{
	{Name: "Hebrew Bible (ETCBC BHSA)", ModuleID: 7, ShortName: "BHSA", RightToLeft: true},
	{Name: "Rahlfs Septuagint", ModuleID: 6, ShortName: "LXXR"},
	{Name: "Unlocked Literal Text", ModuleID: 9, ShortName: "ULT"},
	{Name: "Unlocked Simplified Text", ModuleID: 10, ShortName: "UST"},
	{Name: "New English Translation", ModuleID: 4, ShortName: "NET"},
	{Name: "Berean Standard Bible", ModuleID: 11, ShortName: "BSB"},
}

// New builds a catalog, rejecting duplicate module ids and short names.
func New(translations []Translation) (*Catalog, error) {
	ids := make(map[int]bool, len(translations))
	names := make(map[string]bool, len(translations))
	for _, t := range translations {
		if t.ShortName == "" {
			return nil, fmt.Errorf("translation %q has no short name", t.Name)
		}
		key := strings.ToLower(t.ShortName)
		if ids[t.ModuleID] {
			return nil, fmt.Errorf("duplicate module id %d (%s)", t.ModuleID, t.ShortName)
		}
		if names[key] {
			return nil, fmt.Errorf("duplicate short name %s", t.ShortName)
		}
		ids[t.ModuleID] = true
		names[key] = true
	}
	return &Catalog{translations: append([]Translation(nil), translations...)}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultTranslations)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns a copy of the catalog in its static order.
func (c *Catalog) All() []Translation {
	return append([]Translation(nil), c.translations...)
}

// ByModuleID finds the translation that owns moduleID.
func (c *Catalog) ByModuleID(moduleID int) (Translation, bool) {
	for _, t := range c.translations {
		if t.ModuleID == moduleID {
			return t, true
		}
	}
	return Translation{}, false
}

// Select returns the translations whose short name or display name matches one of tokens,
// in catalog order regardless of token order. Tokens that match nothing are returned as unknown.
func (c *Catalog) Select(tokens ...string) (sel Selection, unknown []string) {
	wanted := make(map[string]bool, len(tokens))
	matched := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			wanted[tok] = true
		}
	}

	for _, t := range c.translations {
		short, name := strings.ToLower(t.ShortName), strings.ToLower(t.Name)
		if wanted[short] || wanted[name] {
			sel = append(sel, t)
			matched[short] = true
			matched[name] = true
		}
	}

	for _, tok := range tokens {
		key := strings.ToLower(strings.TrimSpace(tok))
		if key != "" && !matched[key] {
			unknown = append(unknown, tok)
		}
	}
	return sel, unknown
}

// Selection is an ordered subset of a catalog.
type Selection []Translation

// ShortNames lists the API tokens of the selection.
func (s Selection) ShortNames() []string {
	out := make([]string, 0, len(s))
	for _, t := range s {
		out = append(out, t.ShortName)
	}
	return out
}

// Names lists the display names of the selection.
func (s Selection) Names() []string {
	out := make([]string, 0, len(s))
	for _, t := range s {
		out = append(out, t.Name)
	}
	return out
}

// ModulesParam is the comma-joined short name list sent to the API.
func (s Selection) ModulesParam() string {
	return strings.Join(s.ShortNames(), ",")
}

func (s Selection) String() string {
	return strings.Join(s.Names(), ", ")
}
