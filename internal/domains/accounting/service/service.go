package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"westwood/config"
	"westwood/infras/otel"
	"westwood/internal/domains/accounting/model"
	"westwood/internal/domains/accounting/model/dto"
	"westwood/internal/domains/accounting/repository"
	"westwood/shared"
	"westwood/shared/cache"
	"westwood/shared/constant"
	gDto "westwood/shared/dto"
	"westwood/shared/failure"
)

const (
	cacheGetTransaction    = "transaction:get"
	cacheGetAllTransaction = "transaction:gets"
	cacheCountTransaction  = "transaction:count"
	cacheSummary           = "transaction:summary"
)

type Accounting interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TransactionResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, from, to string) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Accounting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Accounting, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Accounting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTransactionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accounting.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create transaction")

		return fmt.Errorf("failed to create transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
		shared.InvalidateCaches(c, s.cache, cacheSummary)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accounting.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transactions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transactions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accounting.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transaction count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transaction count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accounting.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTransaction, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transaction")

		return res, nil
	}

	transaction, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return res, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("transaction not found") //nolint:wrapcheck
	}

	res.FromModel(transaction)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transaction to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accounting.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if transaction exists")

		return fmt.Errorf("failed to check if transaction exists: %w", err)
	}

	if !exist {
		return failure.NotFound("transaction not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete transaction")

		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTransaction, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete transaction from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
		shared.InvalidateCaches(c, s.cache, cacheSummary)
	}()

	return nil
}

func (s *serviceImpl) Summary(ctx context.Context, from, to string) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accounting.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, errFrom := time.Parse(constant.CalendarDateFormat, from)
	toDate, errTo := time.Parse(constant.CalendarDateFormat, to)

	if errFrom != nil || errTo != nil || toDate.Before(fromDate) {
		return res, failure.BadRequestFromString("invalid summary period") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheSummary, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for summary")

		return res, nil
	}

	summary, err := s.repo.Summarize(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize transactions")

		return res, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	res.FromModel(from, to, summary)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save summary to cache")
		}
	}()

	return res, nil
}
