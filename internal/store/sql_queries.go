// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hope-garden/models"
)

// viewHistoryLimit is the number of entries returned by ListViewHistory.
const viewHistoryLimit = 20

var (
	userColumns        = []string{"id", "name", "email", "password", "created_at"}
	exerciseColumns    = []string{"id", "name", "description", "video_url", "created_at"}
	adviceColumns      = []string{"id", "name", "content", "video_url", "created_at"}
	viewHistoryColumns = []string{"id", "user_id", "item_type", "item_id", "item_name", "viewed_at"}
	commentColumns     = []string{
		"c.id", "c.user_id", "c.first_name", "c.last_name", "c.comment", "c.created_at",
		"u.name AS user_name",
	}
)

// upsertViewHistory turns a repeated view into an update of viewed_at. Both
// SQLite and PostgreSQL accept this form; it relies on the unique index on
// (user_id, item_type, item_id).
const upsertViewHistory = "ON CONFLICT (user_id, item_type, item_id) DO UPDATE SET viewed_at = excluded.viewed_at"

func buildCreateUserQuery(b sq.StatementBuilderType, name, email, password string, createdAt time.Time) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("name", "email", "password", "created_at").
		Values(name, email, password, createdAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSelectContentQuery selects every row of a content table ordered by id,
// or the single row with the given id when id is non-nil.
func buildSelectContentQuery(b sq.StatementBuilderType, table string, columns []string, id *int64) (string, []any, error) {
	query := b.Select(columns...).From(table)
	if id != nil {
		query = query.Where(sq.Eq{"id": *id})
	}
	return query.OrderBy("id").ToSql()
}

// buildInsertContentQuery inserts an exercise or advice row. bodyColumn is
// "description" for exercises and "content" for advice.
func buildInsertContentQuery(b sq.StatementBuilderType, table, bodyColumn, name, body, videoURL string, createdAt time.Time) (string, []any, error) {
	return b.Insert(table).
		Columns("name", bodyColumn, "video_url", "created_at").
		Values(name, body, videoURL, createdAt).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("COUNT(*)").From(table).ToSql()
}

func buildInsertCommentQuery(b sq.StatementBuilderType, userID int64, firstName, lastName, text string, createdAt time.Time) (string, []any, error) {
	return b.Insert(models.Comment{}.TableName()).
		Columns("user_id", "first_name", "last_name", "comment", "created_at").
		Values(userID, firstName, lastName, text, createdAt).
		ToSql()
}

// buildListCommentsQuery lists comments newest first, joined with the current
// name of their author. userID narrows the list to one author when non-nil.
func buildListCommentsQuery(b sq.StatementBuilderType, userID *int64) (string, []any, error) {
	query := b.Select(commentColumns...).
		From(models.Comment{}.TableName() + " c").
		LeftJoin(models.User{}.TableName() + " u ON u.id = c.user_id")
	if userID != nil {
		query = query.Where(sq.Eq{"c.user_id": *userID})
	}
	return query.OrderBy("c.created_at DESC", "c.id DESC").ToSql()
}

func buildRecordViewQuery(b sq.StatementBuilderType, userID int64, itemType models.ItemType, itemID int64, itemName string, viewedAt time.Time) (string, []any, error) {
	return b.Insert(models.ViewHistory{}.TableName()).
		Columns("user_id", "item_type", "item_id", "item_name", "viewed_at").
		Values(userID, itemType.String(), itemID, itemName, viewedAt).
		Suffix(upsertViewHistory).
		ToSql()
}

func buildListViewHistoryQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(viewHistoryColumns...).
		From(models.ViewHistory{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("viewed_at DESC", "id DESC").
		Limit(viewHistoryLimit).
		ToSql()
}
