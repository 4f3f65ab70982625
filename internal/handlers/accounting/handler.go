package accounting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"westwood/infras/otel"
	"westwood/internal/domains/accounting/model"
	"westwood/internal/domains/accounting/model/dto"
	"westwood/internal/domains/accounting/service"
	"westwood/shared/constant"
	gDto "westwood/shared/dto"
	"westwood/shared/validator"
	"westwood/transport/http/response"
)

type Handler struct {
	service service.Accounting
	otel    otel.Otel
}

func New(service service.Accounting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTransaction)
		routerGroup.Get("/", handler.GetTransactions)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/{id}", handler.GetTransactionByID)
		routerGroup.Delete("/{id}", handler.DeleteTransaction)
	})
}

// CreateTransaction records a ledger entry.
// @Summary Create a new transaction
// @Tags Accounting
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} response.Message "Transaction created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/transactions [post]
// @Security BearerAuth
func (handler *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransaction")
	defer scope.End()

	req := dto.CreateTransactionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create transaction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Transaction created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Transaction created successfully")
}

// GetTransactions lists ledger entries for a period.
// @Summary Get all transactions
// @Tags Accounting
// @Accept json
// @Produce json
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Param kind query string false "Filter by kind (credit or debit)"
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetTransactionsResponse "List of transactions"
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if from := r.URL.Query().Get("from"); from != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    model.TableName,
		})
	}

	if to := r.URL.Query().Get("to"); to != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    to,
			Table:    model.TableName,
		})
	}

	if kind := r.URL.Query().Get(model.FieldKind); kind != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorLike,
			Value:    category,
			Table:    model.TableName,
		})
	}

	transactions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetSummary totals credits and debits over a period.
// @Summary Get ledger summary for a period
// @Tags Accounting
// @Accept json
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse "Period summary"
// @Failure 400 {object} response.Error
// @Router /v1/transactions/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	summary, err := handler.service.Summary(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// GetTransactionByID retrieves a ledger entry by ID.
// @Summary Get a transaction by ID
// @Tags Accounting
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 404 {object} response.Error
// @Router /v1/transactions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	transaction, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transaction by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction retrieved successfully")

	response.WithJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction removes a ledger entry.
// @Summary Delete a transaction by ID
// @Tags Accounting
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Message "Transaction deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/transactions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete transaction")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Transaction deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Transaction deleted successfully")
}
