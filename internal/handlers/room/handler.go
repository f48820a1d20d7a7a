package room

import (
	"hotel/infras/otel"
	"hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchRooms)
		routerGroup.Get("/types", handler.GetRoomTypes)
		routerGroup.Get("/{type}", handler.GetRoomByType)
	})
}

// GetRoomTypes lists every room type in catalog order.
// @Summary List room types
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse]
// @Router /v1/rooms/types [get]
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.ListTypes(ctx))
}

// SearchRooms lists the rooms of the searched type.
// @Summary Search rooms by type
// @Description A search that resembles no known type answers with error set to true.
// @Tags Room
// @Produce json
// @Param search query string true "Room type"
// @Success 200 {object} response.Data[dto.SearchRoomsResponse]
// @Router /v1/rooms [get]
func (handler *Handler) SearchRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchRooms")
	defer scope.End()

	query := request.URL.Query().Get(constant.RequestParamSearch)
	scope.SetAttribute("room.search", query)

	res := handler.service.Search(ctx, query)
	if res.Error {
		log.Debug().Str("search", query).Msg("room search matched no type")
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByType shows the summary of a room type.
// @Summary Get room type details
// @Tags Room
// @Produce json
// @Param type path string true "Room type"
// @Success 200 {object} response.Data[dto.RoomDetailResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{type} [get]
func (handler *Handler) GetRoomByType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByType")
	defer scope.End()

	roomType := chi.URLParam(request, constant.RequestParamRoomType)

	res, err := handler.service.GetByType(ctx, roomType)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("type", roomType).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
