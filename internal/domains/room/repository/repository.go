package repository

import (
	"encoding/json"
	"fmt"
	"hotel/config"
	"hotel/internal/domains/room/model"
	"hotel/shared/failure"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Catalog is the read-only room catalog. It is loaded once and never written by booking flows, so it is
// safe to share between goroutines without locking.
type Catalog interface {
	ListTypes() []string
	RoomsOfType(typeID string) []model.RoomInstance
	HasType(typeID string) bool
	Room(typeID string) (model.RoomInstance, bool)
	FindRoom(roomNumber int) (model.RoomInstance, bool)
}

type catalogImpl struct {
	types   []model.RoomType
	byIndex map[string][]int
	rooms   map[int]model.RoomInstance
}

// New loads the catalog file named by STORAGE_CATALOG_FILE.
func New(cfg *config.Config) (Catalog, error) {
	path := cfg.Storage.CatalogFile

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read room catalog")

		return nil, failure.Persistence(fmt.Errorf("failed to read room catalog %s: %w", path, err)) // nolint:wrapcheck
	}

	var types []model.RoomType
	if err = json.Unmarshal(data, &types); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode room catalog")

		return nil, failure.Persistence(fmt.Errorf("failed to decode room catalog %s: %w", path, err)) // nolint:wrapcheck
	}

	catalog, err := NewFromTypes(types)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("types", len(types)).Msg("Room catalog loaded")

	return catalog, nil
}

// NewFromTypes builds a catalog from already decoded room types. Room numbers must be unique.
func NewFromTypes(types []model.RoomType) (Catalog, error) {
	catalog := &catalogImpl{
		types:   types,
		byIndex: make(map[string][]int, len(types)),
		rooms:   make(map[int]model.RoomInstance),
	}

	for i, roomType := range types {
		key := strings.ToLower(roomType.Type)
		catalog.byIndex[key] = append(catalog.byIndex[key], i)

		for _, room := range roomType.Rooms {
			if existing, ok := catalog.rooms[room.RoomNumber]; ok {
				err := fmt.Errorf("room number %d is listed under both %q and %q", room.RoomNumber, existing.RoomType, roomType.Type)
				log.Error().Err(err).Msg("invalid room catalog")

				return nil, failure.Persistence(err) // nolint:wrapcheck
			}

			catalog.rooms[room.RoomNumber] = room
		}
	}

	return catalog, nil
}

func (c *catalogImpl) ListTypes() []string {
	types := make([]string, len(c.types))
	for i, roomType := range c.types {
		types[i] = roomType.Type
	}

	return types
}

// RoomsOfType matches the type identifier case-insensitively and returns the rooms of every matching
// type in catalog order.
func (c *catalogImpl) RoomsOfType(typeID string) []model.RoomInstance {
	rooms := []model.RoomInstance{}

	for _, index := range c.byIndex[strings.ToLower(typeID)] {
		rooms = append(rooms, c.types[index].Rooms...)
	}

	return rooms
}

func (c *catalogImpl) HasType(typeID string) bool {
	_, ok := c.byIndex[strings.ToLower(typeID)]

	return ok
}

// Room returns the first room of the type whose own room_type field is exactly typeID.
func (c *catalogImpl) Room(typeID string) (model.RoomInstance, bool) {
	for _, room := range c.RoomsOfType(typeID) {
		if room.RoomType == typeID {
			return room, true
		}
	}

	return model.RoomInstance{}, false
}

func (c *catalogImpl) FindRoom(roomNumber int) (model.RoomInstance, bool) {
	room, ok := c.rooms[roomNumber]

	return room, ok
}
