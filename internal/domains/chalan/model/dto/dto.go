package dto

import (
	"time"

	"prism/internal/domains/chalan/model"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type ItemRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Quantity    float64 `json:"quantity"    validate:"required,gt=0"`
	Rate        float64 `json:"rate"        validate:"required,gt=0"`
}

// ToModel computes the line amount server side; whatever the client sends for
// amounts is ignored.
func (i *ItemRequest) ToModel(chalanID, user string) model.Item {
	return model.Item{
		ID:          uuid.NewString(),
		ChalanID:    chalanID,
		Description: i.Description,
		Quantity:    i.Quantity,
		Rate:        i.Rate,
		Amount:      i.Quantity * i.Rate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateChalanRequest struct {
	CustomerID string        `json:"customer_id" validate:"required,uuid"`
	ProjectID  string        `json:"project_id"  validate:"required,uuid"`
	IssueDate  string        `json:"issue_date"  validate:"required,calendarday"`
	Items      []ItemRequest `json:"items"       validate:"required,min=1,dive"`
}

func (c *CreateChalanRequest) Date() (time.Time, error) {
	return timezone.Parse(constant.CalendarDayFormat, c.IssueDate)
}

func (c *CreateChalanRequest) ToModel(chalanNumber, user string, issueDate time.Time) (model.Chalan, []model.Item) {
	chalan := model.Chalan{
		ID:           uuid.NewString(),
		ChalanNumber: chalanNumber,
		CustomerID:   c.CustomerID,
		ProjectID:    c.ProjectID,
		IssueDate:    issueDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	items := make([]model.Item, len(c.Items))
	for i := range c.Items {
		items[i] = c.Items[i].ToModel(chalan.ID, user)
		chalan.TotalAmount += items[i].Amount
	}

	return chalan, items
}

type CancelChalanRequest struct {
	CancelReason string `json:"cancel_reason" validate:"required,max=255"`
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Description = model.Description
	r.Quantity = model.Quantity
	r.Rate = model.Rate
	r.Amount = model.Amount
}

type ChalanResponse struct {
	ID           string         `json:"id"`
	ChalanNumber string         `json:"chalan_number"`
	CustomerID   string         `json:"customer_id"`
	ProjectID    string         `json:"project_id"`
	IssueDate    string         `json:"issue_date"`
	TotalAmount  float64        `json:"total_amount"`
	IsCancelled  bool           `json:"is_cancelled"`
	CancelReason string         `json:"cancel_reason,omitempty"`
	ArchiveURL   string         `json:"archive_url,omitempty"`
	Items        []ItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *ChalanResponse) FromModel(chalan model.Chalan, items []model.Item) {
	r.ID = chalan.ID
	r.ChalanNumber = chalan.ChalanNumber
	r.CustomerID = chalan.CustomerID
	r.ProjectID = chalan.ProjectID
	r.IssueDate = timezone.Format(chalan.IssueDate, constant.CalendarDayFormat)
	r.TotalAmount = chalan.TotalAmount
	r.IsCancelled = chalan.IsCancelled
	r.CancelReason = chalan.CancelReason
	r.ArchiveURL = chalan.ArchiveURL
	r.Metadata.FromModel(chalan.Metadata)

	if len(items) == 0 {
		return
	}

	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetChalansResponse struct {
	Chalans   []ChalanResponse `json:"chalans"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetChalansResponse) FromModels(models []model.Chalan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Chalans = make([]ChalanResponse, len(models))
	for i, mod := range models {
		r.Chalans[i].FromModel(mod, nil)
	}
}

// ChalanEvent is the payload published on chalan lifecycle changes.
type ChalanEvent struct {
	Event        string  `json:"event"`
	ChalanID     string  `json:"chalan_id"`
	ChalanNumber string  `json:"chalan_number"`
	CustomerID   string  `json:"customer_id"`
	ProjectID    string  `json:"project_id"`
	TotalAmount  float64 `json:"total_amount"`
	Actor        string  `json:"actor"`
	OccurredAt   string  `json:"occurred_at"`
}

func NewChalanEvent(event string, chalan model.Chalan, actor string) ChalanEvent {
	return ChalanEvent{
		Event:        event,
		ChalanID:     chalan.ID,
		ChalanNumber: chalan.ChalanNumber,
		CustomerID:   chalan.CustomerID,
		ProjectID:    chalan.ProjectID,
		TotalAmount:  chalan.TotalAmount,
		Actor:        actor,
		OccurredAt:   timezone.Format(timezone.Now(), time.RFC3339),
	}
}
