package dto

import (
	"prism/internal/domains/room/model"
	"prism/shared"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	RoomType string `json:"room_type" validate:"required,oneof=sound music vfx client_office editing dubbing mixing"`
	Capacity int    `json:"capacity"  validate:"required,min=1,max=200"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:       uuid.NewString(),
		Name:     c.Name,
		RoomType: c.RoomType,
		Capacity: c.Capacity,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name     string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	RoomType string `db:"room_type" json:"room_type" validate:"omitempty,oneof=sound music vfx client_office editing dubbing mixing"`
	Capacity int    `db:"capacity"  json:"capacity"  validate:"omitempty,min=1,max=200"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RoomType string `json:"room_type"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
