// Package domain defines the catalog's core data models and interfaces.
// It contains plain types (types subpackage) and contracts (interfaces
// subpackage) only, re-exported here for compact imports.
package domain
