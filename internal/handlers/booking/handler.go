package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Booking
	roomService roomService.Room
	otel        otel.Otel
}

func New(service service.Booking, roomService roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		roomService: roomService,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/search", handler.FindBooking)
	})
}

// CreateBooking books a room for the given stay.
// @Summary Create a new booking
// @Description Books the requested room, or the first free room of the type when no room number is given.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.TryBook(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("kind", string(failure.GetKind(err))).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created for room " + strconv.Itoa(res.RoomNumber))

	response.WithJSON(writer, http.StatusCreated, res)
}

// CheckAvailability tells whether a room, or any room of the type, is free for the stay.
// @Summary Check availability
// @Tags Booking
// @Produce json
// @Param room_type query string true "Room type"
// @Param room_number query int false "Room number"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := request.URL.Query()
	roomType := query.Get(constant.RequestParamRoomTypeQuery)

	if err := validator.ValidateVar(roomType, "required,notblank"); err != nil {
		response.WithError(writer, failure.InvalidInput("room_type is required"))

		return
	}

	var roomNumber *int

	if raw := strings.TrimSpace(query.Get(constant.RequestParamRoomNumber)); raw != constant.Empty {
		number, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(writer, failure.InvalidInput("room_number must be a number"))

			return
		}

		if !handler.roomService.ValidateRoomNumber(ctx, number, roomType) {
			response.WithError(writer, failure.ErrInvalidRoomNumber)

			return
		}

		roomNumber = &number
	}

	res, err := handler.service.CheckAvailability(ctx, roomType, roomNumber, query.Get(constant.RequestParamCheckIn), query.Get(constant.RequestParamCheckOut))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// FindBooking looks a booking up by guest name and check-in date.
// @Summary Find a booking
// @Tags Booking
// @Produce json
// @Param name query string true "Guest name or part of it"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BookingResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/search [get]
func (handler *Handler) FindBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindBooking")
	defer scope.End()

	query := request.URL.Query()

	res, err := handler.service.FindBooking(ctx, query.Get(constant.RequestParamName), query.Get(constant.RequestParamCheckIn))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to find booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
