// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification tells a repository what kind of constraint, if any,
// a failed statement violated. Repositories turn violations into ordinary
// results and propagate everything else.
type ErrorClassification int

const (
	// Unclassified covers every error that is not a known constraint
	// violation: connection loss, syntax errors, disk errors and so on.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a duplicate value in a UNIQUE column or index.
	UniqueViolation

	// ForeignKeyViolation is a reference to a missing parent row.
	ForeignKeyViolation

	// NotNullViolation is a NULL written into a NOT NULL column.
	NotNullViolation

	// CheckViolation is a value rejected by a CHECK constraint.
	CheckViolation
)

// String implements fmt.Stringer.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique violation"
	case ForeignKeyViolation:
		return "foreign key violation"
	case NotNullViolation:
		return "not null violation"
	case CheckViolation:
		return "check violation"
	default:
		return "unclassified"
	}
}

// IsConstraintViolation reports whether c is one of the integrity
// constraint classes.
func (c ErrorClassification) IsConstraintViolation() bool {
	return c != Unclassified
}
