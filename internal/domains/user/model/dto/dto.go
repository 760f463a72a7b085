package dto

import (
	"time"

	"prism/internal/domains/user/model"
	"prism/shared"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=50"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	SecurityPin string `json:"security_pin" validate:"required,len=4,numeric"`
	Role        string `json:"role"         validate:"required,oneof=admin gst non_gst"`
	CompanyID   string `json:"company_id"   validate:"required,uuid"`
	FullName    string `json:"full_name"    validate:"omitempty,max=150"`
}

// ToModel builds the stored user. The password and pin arrive already hashed.
func (c *CreateUserRequest) ToModel(creator, hashedPassword, hashedPin string) model.User {
	user := model.User{
		ID:          uuid.NewString(),
		Username:    c.Username,
		Password:    hashedPassword,
		SecurityPin: hashedPin,
		Role:        c.Role,
		CompanyID:   c.CompanyID,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  creator,
			ModifiedBy: creator,
		},
	}

	if c.Email != "" {
		user.Email = &c.Email
	}

	if c.FullName != "" {
		user.FullName = &c.FullName
	}

	return user
}

type UpdateUserRequest struct {
	Email     string `db:"email"      json:"email"      validate:"omitempty,email"`
	Role      string `db:"role"       json:"role"       validate:"omitempty,oneof=admin gst non_gst"`
	CompanyID string `db:"company_id" json:"company_id" validate:"omitempty,uuid"`
	FullName  string `db:"full_name"  json:"full_name"  validate:"omitempty,max=150"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	FullName  string `json:"full_name,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Role = model.Role
	r.CompanyID = model.CompanyID
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.Email != nil {
		r.Email = *model.Email
	}

	if model.FullName != nil {
		r.FullName = *model.FullName
	}

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, time.RFC3339)
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
