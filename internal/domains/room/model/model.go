package model

import "prism/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldRoomType = "room_type"
	FieldCapacity = "capacity"
	FieldActive   = "active"
)

const (
	RoomTypeSound        = "sound"
	RoomTypeMusic        = "music"
	RoomTypeVFX          = "vfx"
	RoomTypeClientOffice = "client_office"
	RoomTypeEditing      = "editing"
	RoomTypeDubbing      = "dubbing"
	RoomTypeMixing       = "mixing"
)

type Room struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	RoomType string `db:"room_type"`
	Capacity int    `db:"capacity"`
	Active   bool   `db:"active"`
	model.Metadata
}
