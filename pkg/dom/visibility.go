package dom

import "fmt"

// VisibilityMode selects how an element is shown or hidden.
type VisibilityMode string

const (
	// VisibilityStyle writes an inline display property.
	VisibilityStyle VisibilityMode = "style"
	// VisibilityClass toggles a hidden utility class.
	VisibilityClass VisibilityMode = "class"
)

// DefaultHiddenClass is the bootstrap utility class used by VisibilityClass.
const DefaultHiddenClass = "d-none"

// Visibility toggles elements using one mode. The zero value uses inline
// styles.
type Visibility struct {
	Mode        VisibilityMode `yaml:"mode" json:"mode"`
	HiddenClass string         `yaml:"hidden_class,omitempty" json:"hiddenClass,omitempty"`
}

// ParseVisibilityMode validates a configured mode. Empty selects style.
func ParseVisibilityMode(raw string) (VisibilityMode, error) {
	switch VisibilityMode(raw) {
	case "", VisibilityStyle:
		return VisibilityStyle, nil
	case VisibilityClass:
		return VisibilityClass, nil
	default:
		return "", fmt.Errorf("dom: unknown visibility mode %q", raw)
	}
}

// Apply shows or hides node. A nil node is ignored.
func (v Visibility) Apply(node Node, visible bool) {
	if node == nil {
		return
	}
	if v.Mode == VisibilityClass {
		node.ToggleClass(v.hiddenClass(), !visible)
		return
	}
	if visible {
		node.SetStyle("display", "block")
	} else {
		node.SetStyle("display", "none")
	}
}

// Visible reports whether node is currently shown under this mode.
func (v Visibility) Visible(node Node) bool {
	if node == nil {
		return false
	}
	if v.Mode == VisibilityClass {
		return !node.HasClass(v.hiddenClass())
	}
	return node.Style("display") != "none"
}

func (v Visibility) hiddenClass() string {
	if v.HiddenClass == "" {
		return DefaultHiddenClass
	}
	return v.HiddenClass
}
