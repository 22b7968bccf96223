// Package dom defines the document abstraction every hostelui component works
// against. Components never touch a concrete DOM: they read control values,
// toggle visibility and write feedback through Document and Node so the same
// logic runs in the browser (see jsdoc) and over parsed markup (see htmldoc).
//
// Elements referenced by id are part of the page template contract. A missing
// element is tolerated everywhere: lookups return nil and helpers report false
// instead of failing the handler.
package dom
