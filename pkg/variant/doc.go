// Package variant loads the page variants that wire hostelui components to a
// concrete page layout: element ids, the required-field checklist, how
// feedback is shown, how cards are hidden, and which optional panel fields
// exist. Variants are YAML documents; a default set is embedded.
package variant
