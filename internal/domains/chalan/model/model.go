package model

import (
	"time"

	"prism/shared/model"
)

const (
	TableName  = "chalans"
	EntityName = "chalan"

	FieldID           = "id"
	FieldChalanNumber = "chalan_number"
	FieldCustomerID   = "customer_id"
	FieldProjectID    = "project_id"
	FieldIssueDate    = "issue_date"
	FieldTotalAmount  = "total_amount"
	FieldIsCancelled  = "is_cancelled"
	FieldCancelReason = "cancel_reason"
	FieldArchiveURL   = "archive_url"
)

const (
	ItemTableName  = "chalan_items"
	ItemEntityName = "chalan_item"

	FieldItemID          = "id"
	FieldItemChalanID    = "chalan_id"
	FieldItemDescription = "description"
	FieldItemQuantity    = "quantity"
	FieldItemRate        = "rate"
	FieldItemAmount      = "amount"
)

type Chalan struct {
	ID           string    `db:"id"`
	ChalanNumber string    `db:"chalan_number"`
	CustomerID   string    `db:"customer_id"`
	ProjectID    string    `db:"project_id"`
	IssueDate    time.Time `db:"issue_date"`
	TotalAmount  float64   `db:"total_amount"`
	IsCancelled  bool      `db:"is_cancelled"`
	CancelReason string    `db:"cancel_reason"`
	ArchiveURL   string    `db:"archive_url"`
	model.Metadata
}

type Item struct {
	ID          string  `db:"id"`
	ChalanID    string  `db:"chalan_id"`
	Description string  `db:"description"`
	Quantity    float64 `db:"quantity"`
	Rate        float64 `db:"rate"`
	Amount      float64 `db:"amount"`
	model.Metadata
}
