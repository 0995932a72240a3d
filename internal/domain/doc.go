// Package domain defines core data models and contracts shared across the app.
// It contains plain types (identifiers, snapshot records) and interfaces only.
package domain
