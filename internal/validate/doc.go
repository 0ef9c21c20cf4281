// Package validate gates drafts before they reach the catalog store.
//
// Validators are pure: they map a draft to FieldErrors, keyed by form field
// name, and an empty result means the draft may be committed.
package validate
