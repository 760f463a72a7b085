package model

import "prism/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID        = "id"
	FieldName      = "name"
	FieldGSTNumber = "gst_number"
	FieldAddress   = "address"
	FieldActive    = "active"
)

const (
	ContactTableName  = "customer_contacts"
	ContactEntityName = "customer_contact"

	FieldContactID          = "id"
	FieldContactCustomerID  = "customer_id"
	FieldContactName        = "name"
	FieldContactPhone       = "phone"
	FieldContactEmail       = "email"
	FieldContactDesignation = "designation"
)

type Customer struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	GSTNumber string `db:"gst_number"`
	Address   string `db:"address"`
	Active    bool   `db:"active"`
	model.Metadata
}

type Contact struct {
	ID          string `db:"id"`
	CustomerID  string `db:"customer_id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	Designation string `db:"designation"`
	model.Metadata
}
