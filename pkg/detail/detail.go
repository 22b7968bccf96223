// Package detail renders the hostel detail panel shown when a card's details
// action is clicked.
//
// The panel markup comes from a pongo2 template with autoescaping enabled and
// is then passed through a bluemonday whitelist, so attribute text coming from
// the page (names, addresses, amenities) always renders as literal text.
package detail

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/dom"
	rendertemplate "github.com/goliatone/go-hostelui/pkg/render/template"
	"github.com/goliatone/go-hostelui/pkg/render/template/gotemplate"
)

// SecondaryRating selects which secondary rating the panel shows.
type SecondaryRating string

const (
	// RatingOverall reads data-rating and labels it "Overall Rating".
	RatingOverall SecondaryRating = "overall"
	// RatingCleanliness reads data-cleanliness and labels it "Cleanliness".
	RatingCleanliness SecondaryRating = "cleanliness"
)

// ParseSecondaryRating validates a configured rating. Empty selects overall.
func ParseSecondaryRating(raw string) (SecondaryRating, error) {
	switch SecondaryRating(raw) {
	case "", RatingOverall:
		return RatingOverall, nil
	case RatingCleanliness:
		return RatingCleanliness, nil
	default:
		return "", fmt.Errorf("detail: unknown secondary rating %q", raw)
	}
}

// DefaultNote is the safety note printed under every panel.
const DefaultNote = "This accommodation has been verified for safety standards suitable for female students. Always visit before finalizing and consider traveling with a friend for the first visit."

// Config describes the panel markup and which optional fields it carries.
type Config struct {
	CardClass       string          `yaml:"card_class" json:"cardClass"`
	ModalID         string          `yaml:"modal_id" json:"modalId"`
	TitleClass      string          `yaml:"title_class" json:"titleClass"`
	BodyClass       string          `yaml:"body_class" json:"bodyClass"`
	ContactID       string          `yaml:"contact_id" json:"contactId"`
	TriggerClass    string          `yaml:"trigger_class" json:"triggerClass"`
	SecondaryRating SecondaryRating `yaml:"secondary_rating" json:"secondaryRating"`
	HasDistance     bool            `yaml:"has_distance" json:"hasDistance"`
	FormatAmenities bool            `yaml:"format_amenities" json:"formatAmenities"`
	Currency        string          `yaml:"currency,omitempty" json:"currency,omitempty"`
	Note            string          `yaml:"note,omitempty" json:"note,omitempty"`
}

// DefaultConfig matches the recommendations page markup.
func DefaultConfig() Config {
	return Config{
		CardClass:       card.DefaultClass,
		ModalID:         "hostelDetailModal",
		TitleClass:      "modal-title",
		BodyClass:       "modal-body",
		ContactID:       "contact-hostel",
		TriggerClass:    "view-details",
		SecondaryRating: RatingOverall,
		HasDistance:     true,
		FormatAmenities: true,
		Currency:        "₹",
		Note:            DefaultNote,
	}
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	templates rendertemplate.TemplateRenderer
	templFS   fs.FS
	selection *theme.Selection
}

// WithTemplatesFS overrides the embedded template bundle. The bundle must
// provide templates/detail.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(o *options) {
		o.templFS = files
	}
}

// WithTemplateRenderer injects a template renderer.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(o *options) {
		if renderer != nil {
			o.templates = renderer
		}
	}
}

// WithTheme selects the theme whose tokens style badges and panels.
func WithTheme(selection *theme.Selection) Option {
	return func(o *options) {
		if selection != nil {
			o.selection = selection
		}
	}
}

// Renderer builds panel fragments.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	tokens    map[string]string
}

// New constructs a Renderer.
func New(opts ...Option) (*Renderer, error) {
	o := options{templFS: TemplatesFS()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	renderer := o.templates
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(o.templFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("detail: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		tokens:    resolveTokens(o.selection),
	}, nil
}

// Panel is the view model handed to the template.
type Panel struct {
	Title          string            `json:"title"`
	HostelType     string            `json:"hostel_type"`
	Currency       string            `json:"currency"`
	Rent           string            `json:"rent"`
	RoomTypes      string            `json:"room_types"`
	Address        string            `json:"address"`
	Contact        string            `json:"contact"`
	Safety         string            `json:"safety"`
	SecondaryLabel string            `json:"secondary_label"`
	SecondaryIcon  string            `json:"secondary_icon"`
	SecondaryValue string            `json:"secondary_value"`
	ShowDistance   bool              `json:"show_distance"`
	Distance       string            `json:"distance"`
	Score          string            `json:"score"`
	ScoreTone      string            `json:"score_tone"`
	Amenities      []string          `json:"amenities"`
	Colleges       []string          `json:"colleges"`
	Note           string            `json:"note"`
	Tokens         map[string]string `json:"tokens"`
}

const notAvailable = "N/A"

// BuildPanel maps a record onto the panel view model.
func (r *Renderer) BuildPanel(cfg Config, rec card.Record) Panel {
	p := Panel{
		Title:      rec.Name,
		HostelType: orNA(rec.HostelType),
		Currency:   cfg.Currency,
		Rent:       orNA(rec.Rent.Text),
		RoomTypes:  orNA(strings.Join(rec.RoomTypes, ", ")),
		Address:    orNA(rec.Address),
		Contact:    orNA(rec.Contact),
		Safety:     orNA(rec.Safety),
		Score:      rec.ScoreText,
		ScoreTone:  scoreTone(r.tokens, rec.Score),
		Colleges:   rec.Colleges,
		Note:       cfg.Note,
		Tokens:     r.tokens,
	}
	if _, ok := card.ParseFloat(p.Score); !ok {
		p.Score = "0"
	}
	if cfg.SecondaryRating == RatingCleanliness {
		p.SecondaryLabel = "Cleanliness"
		p.SecondaryIcon = "fa-broom"
		p.SecondaryValue = orNA(rec.Cleanliness)
	} else {
		p.SecondaryLabel = "Overall Rating"
		p.SecondaryIcon = "fa-star"
		p.SecondaryValue = orNA(rec.Rating)
	}
	if cfg.HasDistance && rec.Distance != "" {
		p.ShowDistance = true
		p.Distance = rec.Distance
	}
	p.Amenities = make([]string, 0, len(rec.Amenities))
	for _, amenity := range rec.Amenities {
		if cfg.FormatAmenities {
			amenity = FormatAmenityName(amenity)
		}
		p.Amenities = append(p.Amenities, amenity)
	}
	return p
}

// Render returns the escaped, sanitised panel body for rec.
func (r *Renderer) Render(cfg Config, rec card.Record) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("detail: renderer is nil")
	}
	panel := r.BuildPanel(cfg, rec)
	out, err := r.templates.RenderTemplate("templates/detail", panel)
	if err != nil {
		return "", fmt.Errorf("detail: render panel %q: %w", rec.ID, err)
	}
	return sanitizePanel(out), nil
}

// Show fills the modal with the panel for the card whose data-id is id and
// opens it. It reports false, without error, when the card or the modal is
// missing from the page.
func (r *Renderer) Show(doc dom.Document, cfg Config, id string) (bool, error) {
	if doc == nil {
		return false, nil
	}
	found, ok := card.Find(doc, cfg.CardClass, id)
	if !ok {
		return false, nil
	}
	modal := doc.ByID(cfg.ModalID)
	if modal == nil {
		return false, nil
	}

	body, err := r.Render(cfg, found.Record)
	if err != nil {
		return false, err
	}

	if titles := modal.QueryClass(cfg.TitleClass); len(titles) > 0 {
		titles[0].SetText(found.Record.Name)
	}
	if bodies := modal.QueryClass(cfg.BodyClass); len(bodies) > 0 {
		if err := bodies[0].SetHTML(body); err != nil {
			return false, fmt.Errorf("detail: set panel body: %w", err)
		}
	}
	if contact := doc.ByID(cfg.ContactID); contact != nil {
		if href := telHref(found.Record.Contact); href != "" {
			contact.SetAttr("href", href)
		} else {
			contact.RemoveAttr("href")
		}
	}

	dom.Present(doc, modal)
	return true, nil
}

// Bind opens the panel when any element carrying cfg.TriggerClass is clicked.
// The trigger names its card through data-id. onError receives render
// failures; it may be nil.
func (r *Renderer) Bind(doc dom.Document, cfg Config, onError func(error)) int {
	if doc == nil || cfg.TriggerClass == "" {
		return 0
	}
	triggers := doc.QueryClass(cfg.TriggerClass)
	for _, trigger := range triggers {
		id := dom.Data(trigger, card.AttrID)
		trigger.On("click", func(evt dom.Event) {
			evt.PreventDefault()
			if _, err := r.Show(doc, cfg, id); err != nil && onError != nil {
				onError(err)
			}
		})
	}
	return len(triggers)
}

// FormatAmenityName turns an amenity key such as "swimming_pool" into a
// display name ("Swimming Pool"): underscores become spaces, and each
// space-separated word gets an upper-case first letter with the rest
// lower-cased. Hyphens and digits do not start a new word ("wi-fi" becomes
// "Wi-fi", "24x7" stays "24x7").
func FormatAmenityName(amenity string) string {
	words := strings.Split(strings.ReplaceAll(amenity, "_", " "), " ")
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	for i, word := range words {
		if word == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		words[i] = upper.String(word[:size]) + lower.String(word[size:])
	}
	return strings.Join(words, " ")
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}
