package dto

import (
	"github.com/google/uuid"

	"westwood/internal/domains/room/model"
	gDto "westwood/shared/dto"
	gModel "westwood/shared/model"
	"westwood/shared/timezone"
)

type CreateRoomRequest struct {
	Name     string  `json:"name"      validate:"required,max=100"`
	Capacity int     `json:"capacity"  validate:"omitempty,min=1"`
	BaseRate float64 `json:"base_rate" validate:"omitempty,min=0"`
	Active   *bool   `json:"active"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Capacity: c.Capacity,
		BaseRate: c.BaseRate,
		Active:   active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name     string   `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Capacity *int     `db:"capacity"  json:"capacity"  validate:"omitempty,min=1"`
	BaseRate *float64 `db:"base_rate" json:"base_rate" validate:"omitempty,min=0"`
	Active   *bool    `db:"active"    json:"active"    validate:"omitempty"`
}

type RoomResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	BaseRate float64 `json:"base_rate"`
	Active   bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.BaseRate = model.BaseRate
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
