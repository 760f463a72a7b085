package model

import "time"

// Metadata carries the audit columns shared by every table. The timestamps
// intentionally have no db tag: created_at and modified_at are filled by
// database defaults and triggers, only the actor columns are written by the
// application.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}
