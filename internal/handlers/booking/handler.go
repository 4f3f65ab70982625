package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"westwood/infras/otel"
	"westwood/internal/domains/booking/model/dto"
	"westwood/internal/domains/booking/service"
	"westwood/shared/constant"
	"westwood/shared/validator"
	"westwood/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.SearchBookings)
		routerGroup.Get("/chart", handler.GetChart)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// CreateBooking records a new booking.
// @Summary Create a new booking
// @Description Create a booking; nights, commission, balance and revenue are derived server-side.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// SearchBookings lists bookings matching the query criteria. With no criteria
// the default view is returned: current and upcoming stays, cancellations
// excluded.
// @Summary Search bookings
// @Description Search by partial customer name, booking ID or contact number, and by exact or prefix dates.
// @Tags Booking
// @Accept json
// @Produce json
// @Param customer_name query string false "Partial customer name"
// @Param booking_id query string false "Partial booking ID"
// @Param contact_number query string false "Partial contact number"
// @Param check_in_date query string false "Check-in date or prefix (YYYY-MM-DD)"
// @Param check_out_date query string false "Check-out date or prefix (YYYY-MM-DD)"
// @Param exact_date query bool false "Match dates exactly instead of by prefix"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Matching bookings in check-in order"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	query := r.URL.Query()

	req := dto.SearchBookingsRequest{
		CustomerName:  query.Get("customer_name"),
		BookingID:     query.Get("booking_id"),
		ContactNumber: query.Get("contact_number"),
		CheckInDate:   query.Get("check_in_date"),
		CheckOutDate:  query.Get("check_out_date"),
		ExactDate:     query.Get("exact_date") == "true",
	}

	bookings, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetChart returns the availability grid for a date window.
// @Summary Get the availability chart
// @Description One cell per date and room over the window, with display status and color.
// @Tags Booking
// @Accept json
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ChartResponse] "Chart cells"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/chart [get]
func (handler *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChart")
	defer scope.End()

	chart, err := handler.service.Chart(ctx, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build booking chart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking chart built successfully")

	response.WithJSON(w, http.StatusOK, chart)
}

// GetBookingByID retrieves a booking by its room-dates identity.
// @Summary Get a booking by ID
// @Description Retrieve one booking; with duplicate identities the most recently written record wins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking applies a partial edit and recomputes the derived fields.
// @Summary Update a booking by ID
// @Description Merge the provided fields onto the booking and rewrite the stored record.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking marks a booking as cancelled. The record is kept so the chart
// and revenue reports still see it.
// @Summary Cancel a booking by ID
// @Description Set the booking status to Cancelled without removing the record.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
