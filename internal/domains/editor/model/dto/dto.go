package dto

import (
	"prism/internal/domains/editor/model"
	"prism/shared"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateEditorRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	EditorType string `json:"editor_type" validate:"required,oneof=video audio vfx colorist di"`
	Phone      string `json:"phone"       validate:"omitempty,max=20"`
	Email      string `json:"email"       validate:"omitempty,email"`
}

func (c *CreateEditorRequest) ToModel(user string) model.Editor {
	return model.Editor{
		ID:         uuid.NewString(),
		Name:       c.Name,
		EditorType: c.EditorType,
		Phone:      c.Phone,
		Email:      c.Email,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEditorRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	EditorType string `db:"editor_type" json:"editor_type" validate:"omitempty,oneof=video audio vfx colorist di"`
	Phone      string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Email      string `db:"email"       json:"email"       validate:"omitempty,email"`
	Active     *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type EditorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EditorType string `json:"editor_type"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *EditorResponse) FromModel(model model.Editor) {
	r.ID = model.ID
	r.Name = model.Name
	r.EditorType = model.EditorType
	r.Phone = model.Phone
	r.Email = model.Email
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetEditorsResponse struct {
	Editors   []EditorResponse `json:"editors"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetEditorsResponse) FromModels(models []model.Editor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Editors = make([]EditorResponse, len(models))
	for i, mod := range models {
		r.Editors[i].FromModel(mod)
	}
}
