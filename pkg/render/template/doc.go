// Package template defines the template seam used by the detail panel
// renderer together with a pongo2-backed implementation in gotemplate.
package template
