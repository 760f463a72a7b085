package model

import (
	"time"

	"prism/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldSecurityPin = "security_pin"
	FieldRole        = "role"
	FieldCompanyID   = "company_id"
	FieldFullName    = "full_name"
	FieldLastLogin   = "last_login"
	FieldActive      = "active"
)

type User struct {
	ID          string     `db:"id"`
	Username    string     `db:"username"`
	Email       *string    `db:"email"`
	Password    string     `db:"password"`
	SecurityPin string     `db:"security_pin"`
	Role        string     `db:"role"`
	CompanyID   string     `db:"company_id"`
	FullName    *string    `db:"full_name"`
	LastLogin   *time.Time `db:"last_login"`
	Active      bool       `db:"active"`
	model.Metadata
}
