package detail

import (
	theme "github.com/goliatone/go-theme"
)

// Theme token keys read by the panel template.
const (
	TokenBadgeAmenity = "badge_amenity"
	TokenBadgeCollege = "badge_college"
	TokenScorePanel   = "score_panel"
	TokenNote         = "note"
	TokenToneHigh     = "tone_high"
	TokenToneGood     = "tone_good"
	TokenToneFair     = "tone_fair"
	TokenToneLow      = "tone_low"
)

// DefaultTheme is the bootstrap dark theme the pages ship with. The "light"
// variant swaps the dark panel backgrounds.
func DefaultTheme() *theme.Manifest {
	return &theme.Manifest{
		Name:    "hostelui",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenBadgeAmenity: "badge bg-info me-1 mb-1",
			TokenBadgeCollege: "badge bg-secondary me-1 mb-1",
			TokenScorePanel:   "card bg-dark",
			TokenNote:         "bg-dark p-3 rounded",
			TokenToneHigh:     "success",
			TokenToneGood:     "info",
			TokenToneFair:     "warning",
			TokenToneLow:      "danger",
		},
		Variants: map[string]theme.Variant{
			"light": {
				Tokens: map[string]string{
					TokenScorePanel: "card bg-light",
					TokenNote:       "bg-light p-3 rounded",
				},
			},
		},
	}
}

// DefaultSelection selects the default theme without a variant.
func DefaultSelection() *theme.Selection {
	manifest := DefaultTheme()
	return &theme.Selection{Theme: manifest.Name, Manifest: manifest}
}

// resolveTokens flattens a selection: manifest tokens overlaid with the
// selected variant's tokens.
func resolveTokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		selection = DefaultSelection()
	}
	manifest := selection.Manifest
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// scoreTone maps a match score to a contextual colour token.
func scoreTone(tokens map[string]string, score float64) string {
	switch {
	case score >= 80:
		return tokens[TokenToneHigh]
	case score >= 60:
		return tokens[TokenToneGood]
	case score >= 40:
		return tokens[TokenToneFair]
	default:
		return tokens[TokenToneLow]
	}
}
