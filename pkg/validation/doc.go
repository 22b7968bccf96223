// Package validation checks the preference form before it is submitted.
//
// A checklist of Rules is evaluated against a Source (the live document or a
// posted url.Values) and yields a Report. Apply then writes the report back as
// inline feedback using one of the two supported mechanisms. Nothing is ever
// surfaced as a dialog.
package validation
