package dom

import "strings"

// ControlValue returns the current value of the control with the given id.
// The boolean is false when the element is missing.
func ControlValue(doc Document, id string) (string, bool) {
	if doc == nil {
		return "", false
	}
	node := doc.ByID(id)
	if node == nil {
		return "", false
	}
	return node.Value(), true
}

// CheckedValues returns the values of every checked control sharing name.
func CheckedValues(doc Document, name string) []string {
	if doc == nil {
		return nil
	}
	var out []string
	for _, node := range doc.QueryName(name) {
		if node.Checked() {
			out = append(out, node.Value())
		}
	}
	return out
}

// SetFeedback writes message into the feedback element identified by id.
// An empty message clears it.
func SetFeedback(doc Document, id, message string) bool {
	if doc == nil || strings.TrimSpace(id) == "" {
		return false
	}
	node := doc.ByID(id)
	if node == nil {
		return false
	}
	node.SetText(message)
	return true
}

// SetText writes text content into the element identified by id.
func SetText(doc Document, id, text string) bool {
	return SetFeedback(doc, id, text)
}

// Data reads a data-* attribute. key is given without the "data-" prefix.
func Data(node Node, key string) string {
	if node == nil {
		return ""
	}
	value, _ := node.Attr("data-" + key)
	return value
}

// SplitClasses splits a class attribute into its tokens.
func SplitClasses(raw string) []string {
	return strings.Fields(raw)
}
