package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"westwood/config"
	kafkaMocks "westwood/infras/kafka/mocks"
	"westwood/infras/otel/mocks"
	bookingMocks "westwood/internal/domains/booking/mocks"
	"westwood/internal/domains/booking/model"
	"westwood/internal/domains/booking/model/dto"
	"westwood/internal/domains/booking/service"
	cacheMocks "westwood/shared/cache/mocks"
	"westwood/shared/constant"
)

type fixture struct {
	store *bookingMocks.MockStore
	cache *cacheMocks.MockRedisCache
	svc   service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	store := bookingMocks.NewMockStore(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		store: store,
		cache: redisCache,
		svc:   service.New(store, cfg, redisCache, kafkaClient, mockOtel),
	}
}

func storedBooking() model.Booking {
	return model.Booking{
		ID:              "a2c4e6f8-0000-0000-0000-000000000001",
		BookingID:       "Cedar-2025-08-01-2025-08-05",
		RoomName:        model.RoomCedar,
		CustomerName:    "Jane Smith",
		ContactNumber:   "9876543210",
		CheckInDate:     "2025-08-01",
		CheckOutDate:    "2025-08-05",
		NumberOfNights:  4,
		Status:          model.StatusConfirmed,
		SourceOfBooking: "MMT",
		RoomAmount:      5000,
		AdvancePaid:     1000,
		BalanceToPay:    4000,
		Commission:      1500,
		TWWRevenue:      3500,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateBookingRequest{
				RoomName:      model.RoomCedar,
				CustomerName:  "Jane Smith",
				ContactNumber: "9876543210",
				CheckInDate:   "2025-08-01",
				CheckOutDate:  "2025-08-05",
			},
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "missing customer name fails validation",
			req: dto.CreateBookingRequest{
				RoomName:      model.RoomCedar,
				ContactNumber: "9876543210",
				CheckInDate:   "2025-08-01",
				CheckOutDate:  "2025-08-05",
			},
			setupMock: func(f fixture) {},
			wantErr:   true,
		},
		{
			name: "equal dates fail validation",
			req: dto.CreateBookingRequest{
				RoomName:      model.RoomCedar,
				CustomerName:  "Jane Smith",
				ContactNumber: "9876543210",
				CheckInDate:   "2025-08-01",
				CheckOutDate:  "2025-08-01",
			},
			setupMock: func(f fixture) {},
			wantErr:   true,
		},
		{
			name: "store error",
			req: dto.CreateBookingRequest{
				RoomName:      model.RoomCedar,
				CustomerName:  "Jane Smith",
				ContactNumber: "9876543210",
				CheckInDate:   "2025-08-01",
				CheckOutDate:  "2025-08-05",
			},
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := f.svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Cedar-2025-08-01-2025-08-05", res.BookingID)
			assert.Equal(t, 4, res.NumberOfNights)
		})
	}
}

func TestBookingService_CreateDerivesMoneyFields(t *testing.T) {
	f := newFixture(t)

	var inserted model.Booking

	f.store.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b model.Booking) error {
			inserted = b

			return nil
		})

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	req := dto.CreateBookingRequest{
		RoomName:        model.RoomCedar,
		CustomerName:    "Jane Smith",
		ContactNumber:   "9876543210",
		CheckInDate:     "2025-08-01",
		CheckOutDate:    "2025-08-05",
		SourceOfBooking: "MMT",
		RoomAmount:      5000,
		Food:            1000,
		AdvancePaid:     1000,
	}

	_, err := f.svc.Create(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, 4, inserted.NumberOfNights)
	assert.Equal(t, 1500.0, inserted.Commission)
	assert.Equal(t, 5000.0, inserted.BalanceToPay)
	assert.Equal(t, 4500.0, inserted.TWWRevenue)
	assert.NotEmpty(t, inserted.ID)
}

func TestBookingService_Search(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SearchBookingsRequest
		setupMock func(f fixture)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			req:  dto.SearchBookingsRequest{CustomerName: "jane"},
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss filters and sorts",
			req:  dto.SearchBookingsRequest{CustomerName: "jane"},
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				other := storedBooking()
				other.CustomerName = "John Doe"
				other.BookingID = "Oak-2025-08-01-2025-08-05"

				f.store.EXPECT().
					List(gomock.Any()).
					Return([]model.Booking{other, storedBooking()}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "store error",
			req:  dto.SearchBookingsRequest{CustomerName: "jane"},
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.store.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("read error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Search(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			if tt.wantTotal > 0 {
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		bookingID string
		setupMock func(f fixture)
		wantErr   bool
		wantID    string
	}{
		{
			name:      "cache hit",
			bookingID: "Cedar-2025-08-01-2025-08-05",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "cache miss, found in store",
			bookingID: "Cedar-2025-08-01-2025-08-05",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.store.EXPECT().
					Get(gomock.Any(), "Cedar-2025-08-01-2025-08-05").
					Return(storedBooking(), nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "Cedar-2025-08-01-2025-08-05",
		},
		{
			name:      "not found",
			bookingID: "Oak-2099-01-01-2099-01-02",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "store error",
			bookingID: "Cedar-2025-08-01-2025-08-05",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("read error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), tt.bookingID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, res.BookingID)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	amount := 6000.0
	badCheckOut := "2025-07-30"

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful update recomputes commission",
			req:  dto.UpdateBookingRequest{RoomAmount: &amount},
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				f.store.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) error {
						assert.Equal(t, 6000.0, b.RoomAmount)
						assert.Equal(t, 1800.0, b.Commission)

						return nil
					})

				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			req:  dto.UpdateBookingRequest{RoomAmount: &amount},
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "merged dates fail validation",
			req:  dto.UpdateBookingRequest{CheckOutDate: badCheckOut},
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
			wantErr: true,
		},
		{
			name: "store error",
			req:  dto.UpdateBookingRequest{RoomAmount: &amount},
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				f.store.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(errors.New("write error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := f.svc.Update(ctx, tt.req, "Cedar-2025-08-01-2025-08-05")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful cancellation keeps the record",
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				f.store.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) error {
						assert.Equal(t, model.StatusCancelled, b.Status)

						return nil
					})

				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.store.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Cancel(context.Background(), "Cedar-2025-08-01-2025-08-05")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Chart(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Chart(context.Background(), "not-a-date", "2025-08-05")
		assert.Error(t, err)
	})

	t.Run("builds one cell per date and room", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.store.EXPECT().
			List(gomock.Any()).
			Return([]model.Booking{storedBooking()}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Chart(context.Background(), "2025-08-01", "2025-08-03")
		assert.NoError(t, err)
		assert.Len(t, res.Cells, 3*len(model.RoomNames()))
	})
}
