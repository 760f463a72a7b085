package dto

import (
	"prism/internal/domains/customer/model"
	"prism/shared"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Phone       string `json:"phone"       validate:"omitempty,max=20"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Designation string `json:"designation" validate:"omitempty,max=100"`
}

func (c *ContactRequest) ToModel(customerID, user string) model.Contact {
	return model.Contact{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Designation: c.Designation,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateCustomerRequest struct {
	Name      string           `json:"name"       validate:"required,max=150"`
	GSTNumber string           `json:"gst_number" validate:"omitempty,max=20"`
	Address   string           `json:"address"    validate:"omitempty,max=255"`
	Contacts  []ContactRequest `json:"contacts"   validate:"omitempty,dive"`
}

func (c *CreateCustomerRequest) ToModel(user string) (model.Customer, []model.Contact) {
	customer := model.Customer{
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

	contacts := make([]model.Contact, len(c.Contacts))
	for i := range c.Contacts {
		contacts[i] = c.Contacts[i].ToModel(customer.ID, user)
	}

	return customer, contacts
}

type UpdateCustomerRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=150"`
	GSTNumber string `db:"gst_number" json:"gst_number" validate:"omitempty,max=20"`
	Address   string `db:"address"    json:"address"    validate:"omitempty,max=255"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type ContactResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.Designation = model.Designation
}

type CustomerResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	GSTNumber string            `json:"gst_number"`
	Address   string            `json:"address"`
	Active    bool              `json:"active"`
	Contacts  []ContactResponse `json:"contacts,omitempty"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(customer model.Customer, contacts []model.Contact) {
	r.ID = customer.ID
	r.Name = customer.Name
	r.GSTNumber = customer.GSTNumber
	r.Address = customer.Address
	r.Active = customer.Active
	r.Metadata.FromModel(customer.Metadata)

	if len(contacts) == 0 {
		return
	}

	r.Contacts = make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		r.Contacts[i].FromModel(contact)
	}
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod, nil)
	}
}
