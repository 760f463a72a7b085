package dto

import (
	"prism/internal/domains/project/model"
	"prism/shared"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string `json:"name"         validate:"required,max=150"`
	ProjectType string `json:"project_type" validate:"required,oneof=movie serial web_series ad teaser trilogy"`
	CustomerID  string `json:"customer_id"  validate:"required,uuid"`
	Description string `json:"description"  validate:"omitempty,max=500"`
}

func (c *CreateProjectRequest) ToModel(user string) model.Project {
	return model.Project{
		ID:          uuid.NewString(),
		Name:        c.Name,
		ProjectType: c.ProjectType,
		CustomerID:  c.CustomerID,
		Description: c.Description,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProjectRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=150"`
	ProjectType string `db:"project_type" json:"project_type" validate:"omitempty,oneof=movie serial web_series ad teaser trilogy"`
	CustomerID  string `db:"customer_id"  json:"customer_id"  validate:"omitempty,uuid"`
	Description string `db:"description"  json:"description"  validate:"omitempty,max=500"`
	Active      *bool  `db:"active"       json:"active"       validate:"omitempty"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectType string `json:"project_type"`
	CustomerID  string `json:"customer_id"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.Name = model.Name
	r.ProjectType = model.ProjectType
	r.CustomerID = model.CustomerID
	r.Description = model.Description
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}
