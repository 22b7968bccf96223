package variant

import (
	"embed"
	"io/fs"
	"sort"

	"github.com/goliatone/go-hostelui/pkg/budget"
	"github.com/goliatone/go-hostelui/pkg/detail"
	"github.com/goliatone/go-hostelui/pkg/filter"
	"github.com/goliatone/go-hostelui/pkg/validation"
)

// DefaultName is the variant used when none is requested.
const DefaultName = "recommendations"

// Variant is one page layout. Nil component sections mean the page does not
// carry that component.
type Variant struct {
	Name     string               `yaml:"-"`
	Source   string               `yaml:"-"`
	FormID   string               `yaml:"form_id"`
	Feedback validation.Mechanism `yaml:"feedback"`
	Rules    []validation.Rule    `yaml:"rules"`
	Budget   *budget.Binder       `yaml:"budget"`
	Filter   *filter.Config       `yaml:"filter"`
	Detail   *detail.Config       `yaml:"detail"`
}

// Form returns the validator configured by the variant.
func (v Variant) Form() validation.Form {
	return validation.Form{
		FormID:    v.FormID,
		Rules:     append([]validation.Rule(nil), v.Rules...),
		Mechanism: v.Feedback,
	}
}

// Store holds variants by name.
type Store struct {
	variants map[string]Variant
}

// Get returns the named variant.
func (s *Store) Get(name string) (Variant, bool) {
	if s == nil {
		return Variant{}, false
	}
	v, ok := s.variants[name]
	return v, ok
}

// Names lists the variant names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.variants))
	for name := range s.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge overlays other on s, replacing variants that share a name.
func (s *Store) Merge(other *Store) {
	if s == nil || other == nil {
		return
	}
	if s.variants == nil {
		s.variants = make(map[string]Variant, len(other.variants))
	}
	for name, v := range other.variants {
		s.variants[name] = v
	}
}

//go:embed defaults/*.yaml
var embeddedDefaults embed.FS

// EmbeddedFS returns the bundled default variants.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default loads the embedded variants. They are validated by the package
// tests, so a failure here is a build defect.
func Default() *Store {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return store
}
