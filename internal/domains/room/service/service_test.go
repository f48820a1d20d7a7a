package service_test

import (
	"context"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/internal/domains/room/service"
	"hotel/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) service.Room {
	t.Helper()

	catalog, err := repository.NewFromTypes([]model.RoomType{
		{
			Type: "Standard",
			Rooms: []model.RoomInstance{
				{RoomNumber: 101, Name: "Garden Standard", Price: 89.5, RoomType: "Standard"},
				{RoomNumber: 102, Name: "Courtyard Standard", Price: 92, RoomType: "Standard"},
			},
		},
		{
			Type: "Deluxe Suite",
			Rooms: []model.RoomInstance{
				{RoomNumber: 201, Name: "Harbour Suite", Price: 240, RoomType: "Deluxe Suite"},
			},
		},
	})
	require.NoError(t, err)

	return service.New(catalog, mocks.NewOtel())
}

func TestRoomService_ListTypes(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, []string{"Standard", "Deluxe Suite"}, svc.ListTypes(context.Background()).Types)
}

func TestRoomService_RoomsOfType(t *testing.T) {
	svc := newService(t)

	res := svc.RoomsOfType(context.Background(), "standard")

	require.Len(t, res.Rooms, 2)
	assert.Equal(t, 101, res.Rooms[0].RoomNumber)
	assert.Equal(t, 89.5, res.Rooms[0].Price)

	assert.Empty(t, svc.RoomsOfType(context.Background(), "Penthouse").Rooms)
}

func TestRoomService_ValidateRoomSelection(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "exact type", query: "Standard", want: true},
		{name: "case folded", query: "STANDARD", want: true},
		{name: "partial name", query: "suite", want: true},
		{name: "query containing a type", query: "standard room", want: true},
		{name: "unknown", query: "penthouse", want: false},
		{name: "empty", query: "", want: false},
		{name: "blank", query: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ValidateRoomSelection(context.Background(), tt.query))
		})
	}
}

func TestRoomService_Search(t *testing.T) {
	svc := newService(t)

	t.Run("unknown type sets error flag", func(t *testing.T) {
		res := svc.Search(context.Background(), "penthouse")

		assert.True(t, res.Error)
		assert.Empty(t, res.Rooms)
	})

	t.Run("partial selection lists nothing", func(t *testing.T) {
		res := svc.Search(context.Background(), "suite")

		assert.False(t, res.Error)
		assert.Empty(t, res.Rooms)
	})

	t.Run("exact selection lists rooms", func(t *testing.T) {
		res := svc.Search(context.Background(), "deluxe suite")

		assert.False(t, res.Error)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, 201, res.Rooms[0].RoomNumber)
	})
}

func TestRoomService_ValidateRoomNumber(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name       string
		roomNumber int
		roomType   string
		want       bool
	}{
		{name: "room of type", roomNumber: 102, roomType: "Standard", want: true},
		{name: "case folded type", roomNumber: 201, roomType: "deluxe suite", want: true},
		{name: "room of another type", roomNumber: 201, roomType: "Standard", want: false},
		{name: "unknown room", roomNumber: 999, roomType: "Standard", want: false},
		{name: "unknown type", roomNumber: 101, roomType: "Penthouse", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ValidateRoomNumber(context.Background(), tt.roomNumber, tt.roomType))
		})
	}
}

func TestRoomService_GetByType(t *testing.T) {
	svc := newService(t)

	res, err := svc.GetByType(context.Background(), "Standard")
	require.NoError(t, err)
	assert.Equal(t, "Garden Standard", res.Name)
	assert.Equal(t, "Standard", res.Type)

	_, err = svc.GetByType(context.Background(), "Penthouse")
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}
