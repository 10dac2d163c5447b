// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped foreign key", err: fmt.Errorf("insert: %w", pgError(pgerrcode.ForeignKeyViolation)), want: ForeignKeyViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: NotNullViolation},
		{name: "check", err: pgError(pgerrcode.CheckViolation), want: CheckViolation},
		{name: "syntax", err: pgError(pgerrcode.SyntaxError), want: Unclassified},
		{name: "connection", err: pgError(pgerrcode.ConnectionFailure), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	constraint := func(ext sqlite3.ErrNoExtended) error {
		return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: ext}
	}

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: constraint(sqlite3.ErrConstraintUnique), want: UniqueViolation},
		{name: "primary key", err: constraint(sqlite3.ErrConstraintPrimaryKey), want: UniqueViolation},
		{name: "wrapped foreign key", err: fmt.Errorf("exec: %w", constraint(sqlite3.ErrConstraintForeignKey)), want: ForeignKeyViolation},
		{name: "not null", err: constraint(sqlite3.ErrConstraintNotNull), want: NotNullViolation},
		{name: "check", err: constraint(sqlite3.ErrConstraintCheck), want: CheckViolation},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique violation", UniqueViolation.String())
	assert.Equal(t, "unclassified", Unclassified.String())
	assert.False(t, Unclassified.IsConstraintViolation())
	assert.True(t, ForeignKeyViolation.IsConstraintViolation())
}
