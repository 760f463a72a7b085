package dto

import (
	"time"

	"prism/internal/domains/leave/model"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateLeaveRequest struct {
	EditorID string `json:"editor_id" validate:"required,uuid"`
	FromDate string `json:"from_date" validate:"required,calendarday"`
	ToDate   string `json:"to_date"   validate:"required,calendarday"`
	Reason   string `json:"reason"    validate:"omitempty,max=255"`
}

// Dates returns the parsed leave bounds. The validator already guarantees
// the layout, so parse errors only surface on malformed stored data.
func (c *CreateLeaveRequest) Dates() (from, to time.Time, err error) {
	from, err = timezone.Parse(constant.CalendarDayFormat, c.FromDate)
	if err != nil {
		return from, to, err
	}

	to, err = timezone.Parse(constant.CalendarDayFormat, c.ToDate)

	return from, to, err
}

func (c *CreateLeaveRequest) ToModel(user string, from, to time.Time) model.EditorLeave {
	return model.EditorLeave{
		ID:       uuid.NewString(),
		EditorID: c.EditorID,
		FromDate: from,
		ToDate:   to,
		Reason:   c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type LeaveResponse struct {
	ID       string `json:"id"`
	EditorID string `json:"editor_id"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Reason   string `json:"reason"`
	gDto.Metadata
}

func (r *LeaveResponse) FromModel(model model.EditorLeave) {
	r.ID = model.ID
	r.EditorID = model.EditorID
	r.FromDate = timezone.Format(model.FromDate, constant.CalendarDayFormat)
	r.ToDate = timezone.Format(model.ToDate, constant.CalendarDayFormat)
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetLeavesResponse struct {
	Leaves    []LeaveResponse `json:"leaves"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetLeavesResponse) FromModels(models []model.EditorLeave, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Leaves = make([]LeaveResponse, len(models))
	for i, mod := range models {
		r.Leaves[i].FromModel(mod)
	}
}
