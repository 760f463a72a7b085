package service

import (
	"context"
	"fmt"

	"prism/config"
	"prism/infras/kafka"
	"prism/infras/otel"
	"prism/internal/domains/booking/model"
	"prism/internal/domains/booking/model/dto"
	"prism/internal/domains/booking/repository"
	leaveRepo "prism/internal/domains/leave/repository"
	"prism/internal/scheduling"
	"prism/shared"
	"prism/shared/cache"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/failure"
	"prism/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	EventBookingCreated       = "booking.created"
	EventBookingRescheduled   = "booking.rescheduled"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingCancelled     = "booking.cancelled"
)

// statusRank orders the booking lifecycle. Transitions may only move forward;
// cancellation is handled separately and is terminal.
var statusRank = map[string]int{
	constant.BookingStatusPlanning:  0,
	constant.BookingStatusTentative: 1,
	constant.BookingStatusConfirmed: 2,
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	Check(ctx context.Context, req dto.CheckBookingRequest) (dto.CheckBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Booking
	leaves leaveRepo.Leave
	cfg    *config.Config
	cache  cache.RedisCache
	kafka  kafka.Client
	otel   otel.Otel
}

func New(
	repo repository.Booking,
	leaves leaveRepo.Leave,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:   repo,
		leaves: leaves,
		cfg:    cfg,
		cache:  cache,
		kafka:  kafkaClient,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := req.Date()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking date")

		return failure.BadRequestFromString("booking date must use the YYYY-MM-DD layout") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := req.ToModel(user, date)

	conflicts, err := s.collectConflicts(ctx, booking)
	if err != nil {
		return err
	}

	if len(conflicts) > 0 && !req.Force {
		return failure.ConflictWithDetails("booking collides with the existing schedule", conflicts) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, dto.NewBookingEvent(EventBookingCreated, booking, user))
	s.invalidate(ctx, booking.ID)

	return nil
}

// Check reports every conflict for a proposed slot without writing anything.
// BookingID may name an existing booking so a reschedule probe does not
// collide with itself.
func (s *serviceImpl) Check(ctx context.Context, req dto.CheckBookingRequest) (res dto.CheckBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := req.Date()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking date")

		return res, failure.BadRequestFromString("booking date must use the YYYY-MM-DD layout") // nolint:wrapcheck
	}

	conflicts, err := s.collectConflicts(ctx, model.Booking{
		ID:          req.BookingID,
		RoomID:      req.RoomID,
		EditorID:    req.EditorID,
		BookingDate: date,
		FromTime:    req.FromTime,
		ToTime:      req.ToTime,
	})
	if err != nil {
		return res, err
	}

	res.HasConflict = len(conflicts) > 0
	res.Conflicts = conflicts

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.Conflict("cancelled booking cannot be rescheduled") // nolint:wrapcheck
	}

	merged, err := s.merge(booking, req)
	if err != nil {
		return err
	}

	conflicts, err := s.collectConflicts(ctx, merged)
	if err != nil {
		return err
	}

	if len(conflicts) > 0 && !req.Force {
		return failure.ConflictWithDetails("booking collides with the existing schedule", conflicts) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldRoomID:        merged.RoomID,
		model.FieldEditorID:      merged.EditorID,
		model.FieldCustomerID:    merged.CustomerID,
		model.FieldProjectID:     merged.ProjectID,
		model.FieldBookingDate:   merged.BookingDate,
		model.FieldFromTime:      merged.FromTime,
		model.FieldToTime:        merged.ToTime,
		model.FieldNotes:         merged.Notes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.publish(ctx, dto.NewBookingEvent(EventBookingRescheduled, merged, user))
	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus moves a booking along its lifecycle. The lifecycle only moves
// forward, and a cancellation needs a reason and cannot be undone.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.Conflict("cancelled booking cannot change status") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	event := EventBookingStatusChanged

	if req.Status == constant.BookingStatusCancelled {
		if req.CancelReason == constant.Empty {
			return failure.BadRequestFromString("cancelling a booking requires a reason") // nolint:wrapcheck
		}

		updatedFields[model.FieldCancelReason] = req.CancelReason
		event = EventBookingCancelled
	} else if statusRank[req.Status] <= statusRank[booking.Status] {
		return failure.Conflict("booking status can only move forward") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	s.publish(ctx, dto.NewBookingEvent(event, booking, user))
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// collectConflicts loads the same-day bookings for the room and editor plus
// the editor's leaves, and runs the pure conflict check over them.
func (s *serviceImpl) collectConflicts(ctx context.Context, booking model.Booking) ([]scheduling.Conflict, error) {
	candidate, err := toCandidate(booking)
	if err != nil {
		return nil, failure.BadRequestFromString("booking times must use the HH:MM layout") // nolint:wrapcheck
	}

	roomRows, err := s.repo.GetForRoomOnDate(ctx, booking.RoomID, booking.BookingDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room bookings")

		return nil, fmt.Errorf("failed to load room bookings: %w", err)
	}

	roomBookings, err := toCandidates(roomRows)
	if err != nil {
		return nil, err
	}

	var (
		editorBookings []scheduling.Booking
		leaves         []scheduling.Leave
	)

	if booking.EditorID != constant.Empty {
		editorRows, err := s.repo.GetForEditorOnDate(ctx, booking.EditorID, booking.BookingDate)
		if err != nil {
			log.Error().Err(err).Msg("failed to load editor bookings")

			return nil, fmt.Errorf("failed to load editor bookings: %w", err)
		}

		editorBookings, err = toCandidates(editorRows)
		if err != nil {
			return nil, err
		}

		leaveRows, err := s.leaves.GetCovering(ctx, booking.EditorID, booking.BookingDate)
		if err != nil {
			log.Error().Err(err).Msg("failed to load editor leaves")

			return nil, fmt.Errorf("failed to load editor leaves: %w", err)
		}

		leaves = make([]scheduling.Leave, len(leaveRows))
		for i, row := range leaveRows {
			leaves[i] = scheduling.Leave{
				ID:       row.ID,
				EditorID: row.EditorID,
				FromDate: row.FromDate,
				ToDate:   row.ToDate,
			}
		}
	}

	conflicts, err := scheduling.CheckConflicts(candidate, roomBookings, editorBookings, leaves)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return conflicts, nil
}

func (s *serviceImpl) merge(booking model.Booking, req dto.UpdateBookingRequest) (model.Booking, error) {
	if req.RoomID != constant.Empty {
		booking.RoomID = req.RoomID
	}

	if req.EditorID != constant.Empty {
		booking.EditorID = req.EditorID
	}

	if req.CustomerID != constant.Empty {
		booking.CustomerID = req.CustomerID
	}

	if req.ProjectID != constant.Empty {
		booking.ProjectID = req.ProjectID
	}

	if req.BookingDate != constant.Empty {
		date, err := timezone.Parse(constant.CalendarDayFormat, req.BookingDate)
		if err != nil {
			return booking, failure.BadRequestFromString("booking date must use the YYYY-MM-DD layout") // nolint:wrapcheck
		}

		booking.BookingDate = date
	}

	if req.FromTime != constant.Empty {
		booking.FromTime = req.FromTime
	}

	if req.ToTime != constant.Empty {
		booking.ToTime = req.ToTime
	}

	if req.Notes != constant.Empty {
		booking.Notes = req.Notes
	}

	return booking, nil
}

func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: event.BookingID, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", event.Event).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func toCandidate(booking model.Booking) (scheduling.Booking, error) {
	from, err := scheduling.ParseClock(booking.FromTime)
	if err != nil {
		return scheduling.Booking{}, err
	}

	to, err := scheduling.ParseClock(booking.ToTime)
	if err != nil {
		return scheduling.Booking{}, err
	}

	return scheduling.Booking{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		EditorID:  booking.EditorID,
		Date:      booking.BookingDate,
		From:      from,
		To:        to,
		Cancelled: booking.Status == constant.BookingStatusCancelled,
	}, nil
}

func toCandidates(rows []model.Booking) ([]scheduling.Booking, error) {
	candidates := make([]scheduling.Booking, len(rows))

	for i, row := range rows {
		candidate, err := toCandidate(row)
		if err != nil {
			log.Error().Err(err).Str("id", row.ID).Msg("stored booking has malformed times")

			return nil, fmt.Errorf("stored booking %s has malformed times: %w", row.ID, err)
		}

		candidates[i] = candidate
	}

	return candidates, nil
}
