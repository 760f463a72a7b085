package model

import "prism/shared/model"

const (
	TableName  = "editors"
	EntityName = "editor"

	FieldID         = "id"
	FieldName       = "name"
	FieldEditorType = "editor_type"
	FieldPhone      = "phone"
	FieldEmail      = "email"
	FieldActive     = "active"
)

const (
	EditorTypeVideo    = "video"
	EditorTypeAudio    = "audio"
	EditorTypeVFX      = "vfx"
	EditorTypeColorist = "colorist"
	EditorTypeDI       = "di"
)

type Editor struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	EditorType string `db:"editor_type"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	Active     bool   `db:"active"`
	model.Metadata
}
