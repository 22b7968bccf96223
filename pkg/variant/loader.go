package variant

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/detail"
	"github.com/goliatone/go-hostelui/pkg/dom"
	"github.com/goliatone/go-hostelui/pkg/validation"
)

type documentFile struct {
	Variants map[string]Variant `yaml:"variants"`
}

// LoadFS walks fsys and parses every YAML file. A name defined twice across
// files is an error. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{variants: make(map[string]Variant)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isVariantFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("variant: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load parses a single YAML document.
func Load(data []byte, source string) (*Store, error) {
	store := &Store{variants: make(map[string]Variant)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(data []byte, source string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("variant: file %s is empty", source)
	}
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("variant: parse %s: %w", source, err)
	}
	for rawName, v := range doc.Variants {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("variant: file %s defines an empty variant name", source)
		}
		if _, exists := s.variants[name]; exists {
			return fmt.Errorf("variant: duplicate variant %q (file %s)", name, source)
		}
		normalised, err := normalise(v, name, source)
		if err != nil {
			return err
		}
		s.variants[name] = normalised
	}
	return nil
}

func normalise(v Variant, name, source string) (Variant, error) {
	v.Name = name
	v.Source = source

	mechanism, err := validation.ParseMechanism(string(v.Feedback))
	if err != nil {
		return Variant{}, fmt.Errorf("variant %q (file %s): %w", name, source, err)
	}
	v.Feedback = mechanism

	for idx, rule := range v.Rules {
		if err := rule.Check(); err != nil {
			return Variant{}, fmt.Errorf("variant %q (file %s) rule %d: %w", name, source, idx, err)
		}
	}

	if v.Budget != nil && (v.Budget.SliderID == "" || v.Budget.DisplayID == "") {
		return Variant{}, fmt.Errorf("variant %q (file %s): budget requires slider_id and display_id", name, source)
	}

	if v.Filter != nil {
		mode, err := dom.ParseVisibilityMode(string(v.Filter.Visibility.Mode))
		if err != nil {
			return Variant{}, fmt.Errorf("variant %q (file %s): %w", name, source, err)
		}
		v.Filter.Visibility.Mode = mode
		if v.Filter.CardClass == "" {
			v.Filter.CardClass = card.DefaultClass
		}
	}

	if v.Detail != nil {
		rating, err := detail.ParseSecondaryRating(string(v.Detail.SecondaryRating))
		if err != nil {
			return Variant{}, fmt.Errorf("variant %q (file %s): %w", name, source, err)
		}
		v.Detail.SecondaryRating = rating
		applyDetailDefaults(v.Detail)
	}

	return v, nil
}

func applyDetailDefaults(cfg *detail.Config) {
	defaults := detail.DefaultConfig()
	if cfg.CardClass == "" {
		cfg.CardClass = defaults.CardClass
	}
	if cfg.ModalID == "" {
		cfg.ModalID = defaults.ModalID
	}
	if cfg.ContactID == "" {
		cfg.ContactID = defaults.ContactID
	}
	if cfg.TriggerClass == "" {
		cfg.TriggerClass = defaults.TriggerClass
	}
	if cfg.TitleClass == "" {
		cfg.TitleClass = defaults.TitleClass
	}
	if cfg.BodyClass == "" {
		cfg.BodyClass = defaults.BodyClass
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if cfg.Note == "" {
		cfg.Note = defaults.Note
	}
}

func isVariantFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
