// Package hostelui wires the hostel recommendation page behaviour onto a
// document: preference-form validation, the budget slider display, card
// filtering and the detail panel.
//
// Each component attaches only when its anchor element is on the page, so the
// same variant can be wired onto the preference form and the recommendations
// page alike.
package hostelui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-hostelui/pkg/detail"
	"github.com/goliatone/go-hostelui/pkg/dom"
	"github.com/goliatone/go-hostelui/pkg/filter"
	"github.com/goliatone/go-hostelui/pkg/validation"
	"github.com/goliatone/go-hostelui/pkg/variant"
)

// Variant aliases variant.Variant for callers that only import the root
// package.
type Variant = variant.Variant

// DefaultVariant returns the embedded variant named name, falling back to
// the recommendations page.
func DefaultVariant(name string) Variant {
	store := variant.Default()
	if v, ok := store.Get(name); ok {
		return v
	}
	v, _ := store.Get(variant.DefaultName)
	return v
}

// Option configures Wire.
type Option func(*Page)

// WithLogger routes component diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRenderer overrides the detail panel renderer.
func WithRenderer(renderer *detail.Renderer) Option {
	return func(p *Page) {
		if renderer != nil {
			p.renderer = renderer
		}
	}
}

// Page is a document with the variant's components attached.
type Page struct {
	doc      dom.Document
	variant  Variant
	logger   *zap.Logger
	renderer *detail.Renderer

	// Attached records which components found their anchor elements.
	Attached Attached
}

// Attached lists the components bound by Wire.
type Attached struct {
	Form     bool
	Budget   bool
	Filter   bool
	Triggers int
	Tooltips int
}

// Wire attaches every component of v whose elements exist in doc. Components
// are independent; a missing element only skips its own component.
func Wire(doc dom.Document, v Variant, opts ...Option) (*Page, error) {
	p := &Page{doc: doc, variant: v, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.renderer == nil && v.Detail != nil {
		renderer, err := detail.New()
		if err != nil {
			return nil, err
		}
		p.renderer = renderer
	}

	log := p.logger.With(zap.String("variant", v.Name))

	if len(v.Rules) > 0 {
		form := v.Form()
		form.OnResult = func(report validation.Report) {
			if report.Valid() {
				log.Debug("preference form valid")
				return
			}
			log.Debug("preference form blocked", zap.Strings("messages", report.Messages()))
		}
		p.Attached.Form = form.Bind(doc)
	}
	if v.Budget != nil {
		p.Attached.Budget = v.Budget.Bind(doc)
	}
	if v.Filter != nil {
		p.Attached.Filter = filter.Bind(doc, *v.Filter, func(res filter.Result) {
			log.Debug("cards filtered",
				zap.Int("visible", len(res.Visible)),
				zap.Int("hidden", len(res.Hidden)))
		})
	}
	if v.Detail != nil {
		p.Attached.Triggers = p.renderer.Bind(doc, *v.Detail, func(err error) {
			log.Warn("detail panel failed", zap.Error(err))
		})
	}

	if doc != nil {
		p.Attached.Tooltips = dom.ActivateTooltips(doc)
	}

	log.Debug("page wired",
		zap.Bool("form", p.Attached.Form),
		zap.Bool("budget", p.Attached.Budget),
		zap.Bool("filter", p.Attached.Filter),
		zap.Int("detail_triggers", p.Attached.Triggers),
		zap.Int("tooltips", p.Attached.Tooltips))
	return p, nil
}

// Validate runs the form checklist now and writes feedback.
func (p *Page) Validate() validation.Report {
	return p.variant.Form().Check(p.doc)
}

// Filter applies criteria to the cards. A variant without a filter section
// returns an empty result.
func (p *Page) Filter(c filter.Criteria) filter.Result {
	if p.variant.Filter == nil {
		return filter.Result{}
	}
	return filter.Apply(p.doc, *p.variant.Filter, c)
}

// Refresh re-reads the filter controls and applies them.
func (p *Page) Refresh() filter.Result {
	if p.variant.Filter == nil {
		return filter.Result{}
	}
	return filter.Refresh(p.doc, *p.variant.Filter)
}

// ShowDetails opens the detail panel for the card with data-id id.
func (p *Page) ShowDetails(id string) (bool, error) {
	if p.variant.Detail == nil || p.renderer == nil {
		return false, nil
	}
	return p.renderer.Show(p.doc, *p.variant.Detail, id)
}

// Variant returns the variant the page was wired with.
func (p *Page) Variant() Variant {
	return p.variant
}
