package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"westwood/config"
	"westwood/infras/otel/mocks"
	accountingMocks "westwood/internal/domains/accounting/mocks"
	"westwood/internal/domains/accounting/model"
	"westwood/internal/domains/accounting/model/dto"
	"westwood/internal/domains/accounting/service"
	"westwood/shared/cache"
	cacheMocks "westwood/shared/cache/mocks"
	gDto "westwood/shared/dto"
)

type fixture struct {
	repo  *accountingMocks.MockAccounting
	cache *cacheMocks.MockRedisCache
	svc   service.Accounting
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := accountingMocks.NewMockAccounting(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		repo:  repo,
		cache: redisCache,
		svc:   service.New(repo, cfg, redisCache, mockOtel),
	}
}

func TestAccountingService_Create(t *testing.T) {
	req := dto.CreateTransactionRequest{
		Date:     "2025-08-10",
		Kind:     model.KindDebit,
		Category: "Groceries",
		Amount:   2500,
		PaidTo:   "Village store",
	}

	t.Run("records the entry", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx model.Transaction) error {
				assert.NotEmpty(t, tx.ID)
				assert.Equal(t, model.KindDebit, tx.Kind)
				assert.Equal(t, 2500.0, tx.Amount)

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Create(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := f.svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestAccountingService_Summary(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Summary(context.Background(), "2025-08-31", "2025-08-01")
		assert.Error(t, err)

		_, err = f.svc.Summary(context.Background(), "not-a-date", "2025-08-31")
		assert.Error(t, err)
	})

	t.Run("totals the period", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().
			Summarize(gomock.Any(), "2025-08-01", "2025-08-31").
			Return(model.Summary{TotalCredit: 42000, TotalDebit: 15500}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Summary(context.Background(), "2025-08-01", "2025-08-31")
		assert.NoError(t, err)
		assert.Equal(t, 42000.0, res.TotalCredit)
		assert.Equal(t, 15500.0, res.TotalDebit)
		assert.Equal(t, 26500.0, res.Net)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.SummaryResponse)
				res.TotalCredit = 100

				return nil
			})

		res, err := f.svc.Summary(context.Background(), "2025-08-01", "2025-08-31")
		assert.NoError(t, err)
		assert.Equal(t, 100.0, res.TotalCredit)
	})
}

func TestAccountingService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	t.Run("lists the period", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), params, filter).
			Return([]model.Transaction{{ID: "tx-1", Kind: model.KindCredit, Amount: 5000}}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(context.Background(), params, filter)
		assert.NoError(t, err)
		assert.Len(t, res.Transactions, 1)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), filter).Return(0, errors.New("count failed"))

		_, err := f.svc.GetAll(context.Background(), params, filter)
		assert.Error(t, err)
	})
}

func TestAccountingService_Delete(t *testing.T) {
	t.Run("removes the entry", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Delete(context.Background(), "tx-1")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")
		assert.Error(t, err)
	})
}
