package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"westwood/infras/otel"
	"westwood/infras/postgres"
	"westwood/internal/domains/accounting/model"
	"westwood/shared/constant"
	gDto "westwood/shared/dto"
	"westwood/shared/logger"
	gRepo "westwood/shared/repository"
)

type Accounting interface {
	Insert(ctx context.Context, model model.Transaction) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Transaction, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Transaction, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Summarize(ctx context.Context, from, to string) (model.Summary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Accounting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Summarize totals credits and debits over an inclusive date window.
func (repo *repositoryImpl) Summarize(ctx context.Context, from, to string) (model.Summary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.Summarize")
	defer scope.End()

	query := fmt.Sprintf(`SELECT
		COALESCE(SUM(CASE WHEN kind = '%s' THEN amount ELSE 0 END), 0) AS total_credit,
		COALESCE(SUM(CASE WHEN kind = '%s' THEN amount ELSE 0 END), 0) AS total_debit
		FROM %s WHERE transaction_date BETWEEN :from AND :to`,
		model.KindCredit, model.KindDebit, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"from": from,
		"to":   to,
	}

	var summary model.Summary

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &summary, args)
	if errors.Is(err, sql.ErrNoRows) {
		return summary, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	return summary, nil
}
