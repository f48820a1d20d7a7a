package model

const (
	EntityName = "room"
)

// RoomInstance is one bookable room. RoomNumber is unique across the whole catalog and is the only key
// the booking ledger uses.
type RoomInstance struct {
	RoomNumber int     `json:"room_number"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	RoomType   string  `json:"room_type"`
}

type RoomType struct {
	Type  string         `json:"type"`
	Rooms []RoomInstance `json:"rooms"`
}
