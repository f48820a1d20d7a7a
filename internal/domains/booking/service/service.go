package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/lock"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	ValidateDates(checkIn, checkOut string) bool
	CheckAvailability(ctx context.Context, roomType string, roomNumber *int, checkIn, checkOut string) (dto.AvailabilityResult, error)
	RecordBooking(ctx context.Context, booking model.Booking, roomNumber int) error
	TryBook(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResult, error)
	FindBooking(ctx context.Context, name, checkIn string) (dto.BookingResult, error)
}

type serviceImpl struct {
	repo    repository.Ledger
	catalog roomRepo.Catalog
	rooms   roomService.Room
	locker  lock.Locker
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	repo repository.Ledger,
	catalog roomRepo.Catalog,
	rooms roomService.Room,
	locker lock.Locker,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		rooms:   rooms,
		locker:  locker,
		kafka:   kafka,
		cfg:     cfg,
		otel:    otel,
	}
}

// ValidateDates reports whether both dates are present and readable and the check-out is strictly later
// than the check-in.
func (s *serviceImpl) ValidateDates(checkIn, checkOut string) bool {
	_, _, ok := parseStay(checkIn, checkOut)

	return ok
}

// CheckAvailability checks the given room, or picks the first free room of the type when roomNumber is
// nil, in which case the type must exist. The room number is not matched against the type here.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomType string, roomNumber *int, checkIn, checkOut string) (res dto.AvailabilityResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if roomNumber == nil && !s.catalog.HasType(roomType) {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	in, out, ok := parseStay(checkIn, checkOut)
	if !ok {
		return res, failure.ErrInvalidDates
	}

	ledger, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking ledger")

		return res, fmt.Errorf("failed to load booking ledger: %w", err)
	}

	return s.availability(ledger, roomType, roomNumber, in, out), nil
}

// RecordBooking stores the booking under the room. The caller is trusted to have checked availability.
func (s *serviceImpl) RecordBooking(ctx context.Context, booking model.Booking, roomNumber int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.number", roomNumber)

	if err = s.repo.Append(ctx, roomNumber, booking); err != nil {
		log.Error().Err(err).Int("roomNumber", roomNumber).Msg("failed to record booking")

		return fmt.Errorf("failed to record booking: %w", err)
	}

	log.Info().Int("roomNumber", roomNumber).Str("checkIn", booking.CheckIn).Msg("booking recorded")

	go s.publishRecorded(context.WithoutCancel(ctx), booking, roomNumber)

	return nil
}

// TryBook validates the request, then checks availability and records the booking as one step under
// the configured lock.
func (s *serviceImpl) TryBook(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TryBook")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if !s.rooms.ValidateRoomSelection(ctx, req.RoomType) {
		return res, failure.InvalidInput("room type is not valid") // nolint:wrapcheck
	}

	rooms := s.catalog.RoomsOfType(req.RoomType)
	if len(rooms) == 0 {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if req.RoomNumber != nil && !s.rooms.ValidateRoomNumber(ctx, *req.RoomNumber, req.RoomType) {
		return res, failure.ErrInvalidRoomNumber
	}

	in, out, ok := parseStay(req.CheckIn, req.CheckOut)
	if !ok {
		return res, failure.ErrInvalidDates
	}

	scope.SetAttributes(map[string]any{
		"room.type":    req.RoomType,
		"booking.lock": s.locker.Mode(),
	})

	release := s.locker.Acquire(lockTargets(rooms, req.RoomNumber)...)
	defer release()

	ledger, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking ledger")

		return res, fmt.Errorf("failed to load booking ledger: %w", err)
	}

	result := s.availability(ledger, req.RoomType, req.RoomNumber, in, out)
	if !result.Available {
		if req.RoomNumber != nil {
			return res, failure.ErrRoomNotAvailable
		}

		return res, failure.ErrNoRoomAvailable
	}

	booking := req.ToModel()

	if err = s.RecordBooking(ctx, booking, *result.RoomNumber); err != nil {
		return res, err
	}

	res.FromModel(*result.RoomNumber, booking)

	return res, nil
}

// FindBooking looks up a booking by a fragment of the guest name and the check-in day. When several
// bookings match, the last one in ledger order is returned.
func (s *serviceImpl) FindBooking(ctx context.Context, name, checkIn string) (res dto.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := strings.ToLower(strings.TrimSpace(name))
	if query == constant.Empty {
		return res, failure.InvalidInput("name is required") // nolint:wrapcheck
	}

	day, err := timezone.ParseDate(strings.TrimSpace(checkIn))
	if err != nil {
		return res, failure.InvalidInput("check-in date is not valid") // nolint:wrapcheck
	}

	ledger, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking ledger")

		return res, fmt.Errorf("failed to load booking ledger: %w", err)
	}

	found := false

	for _, entry := range ledger.Rooms {
		for _, booking := range entry.Bookings {
			if !strings.Contains(strings.ToLower(booking.Name), query) {
				continue
			}

			bookedIn, parseErr := timezone.ParseDate(booking.CheckIn)
			if parseErr != nil || !timezone.SameDay(bookedIn, day) {
				continue
			}

			res.FromModel(entry.RoomNumber, booking)
			found = true
		}
	}

	if !found {
		return res, failure.NotFound("couldn't find booking") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) availability(ledger model.Ledger, roomType string, roomNumber *int, checkIn, checkOut time.Time) dto.AvailabilityResult {
	if roomNumber != nil {
		return IsAvailable(ledger, *roomNumber, checkIn, checkOut)
	}

	return FindAvailableRoom(ledger, s.catalog.RoomsOfType(roomType), checkIn, checkOut)
}

func (s *serviceImpl) publishRecorded(ctx context.Context, booking model.Booking, roomNumber int) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingRecorded")
	defer scope.End()

	event := dto.BookingRecordedEvent{
		EventID:    uuid.NewString(),
		RoomNumber: roomNumber,
		Booking:    booking,
		RecordedAt: timezone.Now(),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingRecorded, kafka.Message{
		Key:   strconv.Itoa(roomNumber),
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("eventID", event.EventID).Msg("failed to publish booking recorded event")
	}
}

// parseStay reads both dates and requires the check-out to be strictly after the check-in.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, bool) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)

	if checkIn == constant.Empty || checkOut == constant.Empty {
		return time.Time{}, time.Time{}, false
	}

	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	return in, out, out.After(in)
}

// lockTargets names the rooms a booking attempt may touch: the requested room, or every room of the type
// when one has to be allocated.
func lockTargets(rooms []roomModel.RoomInstance, roomNumber *int) []int {
	if roomNumber != nil {
		return []int{*roomNumber}
	}

	numbers := make([]int, len(rooms))
	for i, room := range rooms {
		numbers[i] = room.RoomNumber
	}

	return numbers
}
