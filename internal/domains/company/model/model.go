package model

import "prism/shared/model"

const (
	TableName  = "companies"
	EntityName = "company"

	FieldID        = "id"
	FieldName      = "name"
	FieldGSTNumber = "gst_number"
	FieldAddress   = "address"
	FieldActive    = "active"
)

type Company struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	GSTNumber string `db:"gst_number"`
	Address   string `db:"address"`
	Active    bool   `db:"active"`
	model.Metadata
}
