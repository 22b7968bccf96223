package variant_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hostelui/pkg/detail"
	"github.com/goliatone/go-hostelui/pkg/dom"
	"github.com/goliatone/go-hostelui/pkg/validation"
	"github.com/goliatone/go-hostelui/pkg/variant"
)

func TestDefault_BundledVariants(t *testing.T) {
	store := variant.Default()

	if diff := cmp.Diff([]string{"compact", "preference", "recommendations"}, store.Names()); diff != "" {
		t.Fatalf("variant names mismatch (-want +got):\n%s", diff)
	}

	rec, ok := store.Get(variant.DefaultName)
	if !ok {
		t.Fatalf("default variant missing")
	}
	if rec.Feedback != validation.MechanismInline {
		t.Errorf("recommendations feedback = %q", rec.Feedback)
	}
	if diff := cmp.Diff(validation.DefaultRules(), rec.Rules); diff != "" {
		t.Errorf("recommendations rules mismatch (-want +got):\n%s", diff)
	}
	if rec.Filter == nil || rec.Filter.Visibility.Mode != dom.VisibilityStyle {
		t.Errorf("recommendations filter = %+v", rec.Filter)
	}
	if rec.Detail == nil || rec.Detail.SecondaryRating != detail.RatingOverall || !rec.Detail.HasDistance {
		t.Errorf("recommendations detail = %+v", rec.Detail)
	}
	if rec.Detail.Note != detail.DefaultNote {
		t.Errorf("detail note should default")
	}

	compact, _ := store.Get("compact")
	if compact.Feedback != validation.MechanismCustomValidity {
		t.Errorf("compact feedback = %q", compact.Feedback)
	}
	if compact.Budget == nil || compact.Budget.SliderID != "budget-slider" || compact.Budget.DisplayID != "budget-value" {
		t.Errorf("compact budget = %+v", compact.Budget)
	}
	if compact.Filter.Visibility.Mode != dom.VisibilityClass {
		t.Errorf("compact visibility = %q", compact.Filter.Visibility.Mode)
	}
	if compact.Detail.SecondaryRating != detail.RatingCleanliness || compact.Detail.HasDistance {
		t.Errorf("compact detail = %+v", compact.Detail)
	}

	pref, _ := store.Get("preference")
	if pref.Filter != nil || pref.Detail != nil {
		t.Errorf("preference page carries no filter or detail")
	}
	last := pref.Rules[len(pref.Rules)-1]
	if last.Kind != validation.KindMin || last.Min != 1000 || last.Feedback() != "budget-feedback" {
		t.Errorf("preference budget rule = %+v", last)
	}

	form := pref.Form()
	if form.FormID != "preference-form" || len(form.Rules) != 5 {
		t.Errorf("form = %+v", form)
	}
}

func TestLoad_Defaults(t *testing.T) {
	store, err := variant.Load([]byte(`
variants:
  bare:
    form_id: prefs
    filter:
      empty_state_id: none-left
    detail:
      modal_id: m
`), "inline.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v, ok := store.Get("bare")
	if !ok {
		t.Fatalf("variant missing")
	}
	if v.Name != "bare" || v.Source != "inline.yaml" {
		t.Errorf("name/source = %q/%q", v.Name, v.Source)
	}
	if v.Feedback != validation.MechanismInline {
		t.Errorf("feedback = %q", v.Feedback)
	}
	if v.Filter.CardClass != "recommendation-card" || v.Filter.Visibility.Mode != dom.VisibilityStyle {
		t.Errorf("filter = %+v", v.Filter)
	}
	if v.Detail.TitleClass != "modal-title" || v.Detail.Currency != "₹" || v.Detail.SecondaryRating != detail.RatingOverall {
		t.Errorf("detail = %+v", v.Detail)
	}
	if v.Detail.ModalID != "m" {
		t.Errorf("configured modal id replaced: %q", v.Detail.ModalID)
	}
	if v.Detail.ContactID != "contact-hostel" || v.Detail.TriggerClass != "view-details" {
		t.Errorf("detail ids not defaulted: contact=%q trigger=%q", v.Detail.ContactID, v.Detail.TriggerClass)
	}
	if v.Budget != nil {
		t.Errorf("budget should stay unset")
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want string
	}{
		"feedback": {
			yaml: "variants:\n  x:\n    feedback: toast\n",
			want: "unknown feedback mechanism",
		},
		"rule kind": {
			yaml: "variants:\n  x:\n    rules:\n      - kind: regex\n        target: college\n",
			want: "unknown rule kind",
		},
		"rule target": {
			yaml: "variants:\n  x:\n    rules:\n      - kind: select\n",
			want: "requires a target",
		},
		"visibility": {
			yaml: "variants:\n  x:\n    filter:\n      visibility:\n        mode: opacity\n",
			want: "unknown visibility mode",
		},
		"rating": {
			yaml: "variants:\n  x:\n    detail:\n      secondary_rating: stars\n",
			want: "unknown secondary rating",
		},
		"budget": {
			yaml: "variants:\n  x:\n    budget:\n      slider_id: budget\n",
			want: "budget requires slider_id and display_id",
		},
		"empty": {
			yaml: "   \n",
			want: "is empty",
		},
		"syntax": {
			yaml: "variants: [",
			want: "parse",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := variant.Load([]byte(tc.yaml), "bad.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFS_DuplicatesAndMerge(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml":       {Data: []byte("variants:\n  one:\n    form_id: a\n")},
		"nested/b.yml": {Data: []byte("variants:\n  one:\n    form_id: b\n")},
		"README.md":    {Data: []byte("# not a variant")},
	}
	if _, err := variant.LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "duplicate variant") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	override, err := variant.LoadFS(fstest.MapFS{
		"site.yaml": {Data: []byte("variants:\n  recommendations:\n    form_id: custom-form\n  extra:\n    form_id: extra-form\n")},
	})
	if err != nil {
		t.Fatalf("load override: %v", err)
	}

	store := variant.Default()
	store.Merge(override)
	if diff := cmp.Diff([]string{"compact", "extra", "preference", "recommendations"}, store.Names()); diff != "" {
		t.Fatalf("merged names mismatch (-want +got):\n%s", diff)
	}
	rec, _ := store.Get("recommendations")
	if rec.FormID != "custom-form" || rec.Source != "site.yaml" {
		t.Fatalf("override not applied: %+v", rec)
	}

	empty, err := variant.LoadFS(nil)
	if err != nil || len(empty.Names()) != 0 {
		t.Fatalf("nil fs: %v %v", empty.Names(), err)
	}
}
