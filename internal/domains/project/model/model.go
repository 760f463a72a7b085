package model

import "prism/shared/model"

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID          = "id"
	FieldName        = "name"
	FieldProjectType = "project_type"
	FieldCustomerID  = "customer_id"
	FieldDescription = "description"
	FieldActive      = "active"
)

const (
	ProjectTypeMovie     = "movie"
	ProjectTypeSerial    = "serial"
	ProjectTypeWebSeries = "web_series"
	ProjectTypeAd        = "ad"
	ProjectTypeTeaser    = "teaser"
	ProjectTypeTrilogy   = "trilogy"
)

type Project struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	ProjectType string `db:"project_type"`
	CustomerID  string `db:"customer_id"`
	Description string `db:"description"`
	Active      bool   `db:"active"`
	model.Metadata
}
