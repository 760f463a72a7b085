package model

import "prism/shared/model"

const (
	TableName  = "module_access"
	EntityName = "module_access"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldModule    = "module"
	FieldCanView   = "can_view"
	FieldCanCreate = "can_create"
	FieldCanEdit   = "can_edit"
	FieldCanDelete = "can_delete"
)

type ModuleAccess struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Module    string `db:"module"`
	CanView   bool   `db:"can_view"`
	CanCreate bool   `db:"can_create"`
	CanEdit   bool   `db:"can_edit"`
	CanDelete bool   `db:"can_delete"`
	model.Metadata
}
