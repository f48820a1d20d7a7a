package dto

import "hotel/internal/domains/room/model"

type RoomResponse struct {
	RoomNumber int     `json:"room_number"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	RoomType   string  `json:"room_type"`
}

func (r *RoomResponse) FromModel(model model.RoomInstance) {
	r.RoomNumber = model.RoomNumber
	r.Name = model.Name
	r.Price = model.Price
	r.RoomType = model.RoomType
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.RoomInstance) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomDetailResponse is the summary shown on a room type page.
type RoomDetailResponse struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

func (r *RoomDetailResponse) FromModel(model model.RoomInstance) {
	r.Name = model.Name
	r.Type = model.RoomType
	r.Price = model.Price
}

type GetRoomTypesResponse struct {
	Types []string `json:"types"`
}

// SearchRoomsResponse mirrors the public room search: Error is set when the query matches no known type.
type SearchRoomsResponse struct {
	Error bool           `json:"error,omitempty"`
	Rooms []RoomResponse `json:"rooms,omitempty"`
}
