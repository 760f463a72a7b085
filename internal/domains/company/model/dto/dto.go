package dto

import (
	"prism/internal/domains/company/model"
	"prism/shared"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name      string `json:"name"       validate:"required,max=150"`
	GSTNumber string `json:"gst_number" validate:"omitempty,max=20"`
	Address   string `json:"address"    validate:"omitempty,max=255"`
}

func (c *CreateCompanyRequest) ToModel(user string) model.Company {
	return model.Company{
		ID:        uuid.NewString(),
		Name:      c.Name,
		GSTNumber: c.GSTNumber,
		Address:   c.Address,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCompanyRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=150"`
	GSTNumber string `db:"gst_number" json:"gst_number" validate:"omitempty,max=20"`
	Address   string `db:"address"    json:"address"    validate:"omitempty,max=255"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GSTNumber string `json:"gst_number"`
	Address   string `json:"address"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(model model.Company) {
	r.ID = model.ID
	r.Name = model.Name
	r.GSTNumber = model.GSTNumber
	r.Address = model.Address
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromModels(models []model.Company, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}
