package service

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

type Room interface {
	ListTypes(ctx context.Context) dto.GetRoomTypesResponse
	RoomsOfType(ctx context.Context, typeID string) dto.GetRoomsResponse
	Search(ctx context.Context, query string) dto.SearchRoomsResponse
	GetByType(ctx context.Context, typeID string) (dto.RoomDetailResponse, error)
	ValidateRoomSelection(ctx context.Context, query string) bool
	ValidateRoomNumber(ctx context.Context, roomNumber int, roomType string) bool
}

type serviceImpl struct {
	catalog repository.Catalog
	otel    otel.Otel
}

func New(catalog repository.Catalog, otel otel.Otel) Room {
	return &serviceImpl{
		catalog: catalog,
		otel:    otel,
	}
}

func (s *serviceImpl) ListTypes(ctx context.Context) (res dto.GetRoomTypesResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTypes")
	defer scope.End()

	res.Types = s.catalog.ListTypes()

	return res
}

func (s *serviceImpl) RoomsOfType(ctx context.Context, typeID string) (res dto.GetRoomsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomsOfType")
	defer scope.End()

	scope.SetAttribute("room.type", typeID)

	res.FromModels(s.catalog.RoomsOfType(typeID))

	return res
}

// Search lists the rooms of the queried type. A query that resembles no known type is reported through
// the Error flag rather than as a failure.
func (s *serviceImpl) Search(ctx context.Context, query string) (res dto.SearchRoomsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()

	if !s.ValidateRoomSelection(ctx, query) {
		res.Error = true

		return res
	}

	res.Rooms = s.RoomsOfType(ctx, query).Rooms

	return res
}

func (s *serviceImpl) GetByType(ctx context.Context, typeID string) (res dto.RoomDetailResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, ok := s.catalog.Room(typeID)
	if !ok {
		log.Warn().Str("type", typeID).Msg("room type not found")

		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// ValidateRoomSelection reports whether the query loosely names a known room type: after case folding,
// either string contains the other. Partial names such as "suite" for "Deluxe Suite" are accepted.
func (s *serviceImpl) ValidateRoomSelection(ctx context.Context, query string) bool {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateRoomSelection")
	defer scope.End()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == constant.Empty {
		return false
	}

	for _, roomType := range s.catalog.ListTypes() {
		typeID := strings.ToLower(roomType)
		if typeID == constant.Empty {
			continue
		}

		if strings.Contains(query, typeID) || strings.Contains(typeID, query) {
			return true
		}
	}

	return false
}

// ValidateRoomNumber reports whether a room of the given type carries exactly that number.
func (s *serviceImpl) ValidateRoomNumber(ctx context.Context, roomNumber int, roomType string) bool {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateRoomNumber")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"room.number": roomNumber,
		"room.type":   roomType,
	})

	for _, room := range s.catalog.RoomsOfType(roomType) {
		if room.RoomNumber == roomNumber {
			return true
		}
	}

	return false
}
