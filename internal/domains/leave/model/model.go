package model

import (
	"time"

	"prism/shared/model"
)

const (
	TableName  = "editor_leaves"
	EntityName = "editor_leave"

	FieldID       = "id"
	FieldEditorID = "editor_id"
	FieldFromDate = "from_date"
	FieldToDate   = "to_date"
	FieldReason   = "reason"
)

type EditorLeave struct {
	ID       string    `db:"id"`
	EditorID string    `db:"editor_id"`
	FromDate time.Time `db:"from_date"`
	ToDate   time.Time `db:"to_date"`
	Reason   string    `db:"reason"`
	model.Metadata
}
