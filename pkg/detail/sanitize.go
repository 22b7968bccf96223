package detail

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	panelPolicyOnce sync.Once
	panelPolicy     *bluemonday.Policy
)

// sanitizePanel restricts the rendered fragment to the elements the panel
// template uses. Interpolated text is already escaped by the template engine;
// the policy guarantees a template override cannot reintroduce scripts,
// handlers or links.
func sanitizePanel(raw string) string {
	return strings.TrimSpace(panelSanitizer().Sanitize(raw))
}

func panelSanitizer() *bluemonday.Policy {
	panelPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "p", "strong", "span", "h5", "i")
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements(
			"div", "p", "strong", "span", "h5", "i",
		)
		panelPolicy = policy
	})
	return panelPolicy
}

// telHref builds a tel: link keeping only dialable characters.
func telHref(contact string) string {
	var sb strings.Builder
	for i, r := range strings.TrimSpace(contact) {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '+' && i == 0:
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return "tel:" + sb.String()
}
