package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"westwood/config"
	"westwood/infras/kafka"
	"westwood/infras/otel"
	"westwood/internal/domains/booking/chart"
	"westwood/internal/domains/booking/collection"
	"westwood/internal/domains/booking/finance"
	"westwood/internal/domains/booking/model"
	"westwood/internal/domains/booking/model/dto"
	"westwood/internal/domains/booking/repository"
	"westwood/shared"
	"westwood/shared/cache"
	"westwood/shared/constant"
	"westwood/shared/failure"
	"westwood/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheSearchBooking = "booking:search"
	cacheChartBooking  = "booking:chart"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingUpdated   = "booking.updated"
	eventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking topic on every write.
type BookingEvent struct {
	Type         string  `json:"type"`
	BookingID    string  `json:"booking_id"`
	RoomName     string  `json:"room_name"`
	CustomerName string  `json:"customer_name"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	TWWRevenue   float64 `json:"tww_revenue"`
	OccurredAt   string  `json:"occurred_at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Search(ctx context.Context, req dto.SearchBookingsRequest) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, bookingID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	Chart(ctx context.Context, from, to string) (dto.ChartResponse, error)
}

type serviceImpl struct {
	store repository.Store
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(store repository.Store, cfg *config.Config, redisCache cache.RedisCache, kafkaClient kafka.Client, otl otel.Otel) Booking {
	return &serviceImpl{
		store: store,
		cfg:   cfg,
		cache: redisCache,
		kafka: kafkaClient,
		otel:  otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking := req.ToModel(user)
	finance.Recalculate(&booking)

	if errs := booking.Validate(); errs != nil {
		return res, failure.BadRequestFromString(strings.Join(errs, "; ")) //nolint:wrapcheck
	}

	if err = s.store.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, eventBookingCreated, booking)
	s.invalidateListCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := searchCacheKey(req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	matched := collection.Search(bookings, req.ToCriteria(), timezone.Now())
	res.FromModels(collection.SortBookings(matched))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
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

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	req.ApplyTo(&booking, user)
	finance.Recalculate(&booking)

	if errs := booking.Validate(); errs != nil {
		return res, failure.BadRequestFromString(strings.Join(errs, "; ")) //nolint:wrapcheck
	}

	if err = s.store.Update(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	s.publishEvent(ctx, eventBookingUpdated, booking)
	s.invalidateBookingCaches(ctx, bookingID)

	res.FromModel(booking)

	return res, nil
}

// Cancel flips the booking to Cancelled in place. The record stays on the
// store so the chart and revenue reports keep seeing it.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	if err = s.store.Update(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.publishEvent(ctx, eventBookingCancelled, booking)
	s.invalidateBookingCaches(ctx, bookingID)

	return nil
}

func (s *serviceImpl) Chart(ctx context.Context, from, to string) (res dto.ChartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Chart")
	defer scope.End()
	defer scope.TraceIfError(err)

	dates := chart.DateRange(from, to)
	if dates == nil {
		return res, failure.BadRequestFromString("from and to must be dates in 2006-01-02 form") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheChartBooking, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking chart")

		return res, nil
	}

	bookings, err := s.store.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res = dto.ChartResponse{
		From:  from,
		To:    to,
		Cells: chart.PrepareChartData(bookings, dates, timezone.Now()),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking chart to cache")
		}
	}()

	return res, nil
}

// publishEvent notifies the booking topic. Publishing is fire-and-forget;
// a broker outage never fails the write that triggered it.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := BookingEvent{
		Type:         eventType,
		BookingID:    booking.BookingID,
		RoomName:     booking.RoomName,
		CustomerName: booking.CustomerName,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Status:       booking.Status,
		TWWRevenue:   booking.TWWRevenue,
		OccurredAt:   timezone.Now().Format(constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: booking.BookingID, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheSearchBooking)
		shared.InvalidateCaches(c, s.cache, cacheChartBooking)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchBooking)
		shared.InvalidateCaches(c, s.cache, cacheChartBooking)
	}()
}

func searchCacheKey(req dto.SearchBookingsRequest) string {
	exact := "prefix"
	if req.ExactDate {
		exact = "exact"
	}

	return shared.BuildCacheKey(
		cacheSearchBooking,
		req.CustomerName,
		req.BookingID,
		req.ContactNumber,
		req.CheckInDate,
		req.CheckOutDate,
		exact,
	)
}
