package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/internal/service"
	"github.com/marcelomiracles/storefront-service/internal/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderSvc interface {
	CreateOrder(ctx context.Context, order entities.Order, initData string) (int64, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

func newOrderService(t *testing.T, repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher, verified bool) orderSvc {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, fakeTxManager{}, repo, staticVerifier(verified), notifier, publisher, newFakeCache())
}

var testOrder = entities.Order{
	UserID:   123456789,
	Username: "testuser",
	Name:     "Иван Иванов",
	Phone:    "+7 (999) 123-45-67",
	Total:    200,
	Items: []entities.OrderItem{
		{Name: "X", Price: 100, Quantity: 2},
	},
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		verified     bool
		mockBehavior func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher)
		wantID       int64
		wantErr      error
	}{
		{
			name:     "OK",
			verified: true,
			mockBehavior: func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher) {
				repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
				repo.On("SaveItems", mock.Anything, int64(7), testOrder.Items).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
				repo.On("ListAdminIDs", mock.Anything).Return([]int64{1, 2}, nil).Once()
				notifier.On("Broadcast", mock.Anything, []int64{1, 2}, mock.MatchedBy(func(text string) bool {
					return strings.Contains(text, "#7")
				})).Return([]telegram.Delivery{{ChatID: 1}, {ChatID: 2}}).Once()
			},
			wantID: 7,
		},
		{
			name:         "invalid init data",
			verified:     false,
			mockBehavior: func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher) {},
			wantErr:      entities.ErrInvalidInitData,
		},
		{
			name:     "retry works",
			verified: true,
			mockBehavior: func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher) {
				// первая попытка падает, вторая проходит
				repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(0), dbError).Once()
				repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
				repo.On("SaveItems", mock.Anything, int64(7), testOrder.Items).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
				repo.On("ListAdminIDs", mock.Anything).Return([]int64{1}, nil).Once()
				notifier.On("Broadcast", mock.Anything, []int64{1}, mock.Anything).Return([]telegram.Delivery{{ChatID: 1}}).Once()
			},
			wantID: 7,
		},
		{
			name:     "save items fails",
			verified: true,
			mockBehavior: func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher) {
				repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(7), nil)
				repo.On("SaveItems", mock.Anything, int64(7), testOrder.Items).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:     "notification failures do not fail the order",
			verified: true,
			mockBehavior: func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher) {
				repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
				repo.On("SaveItems", mock.Anything, int64(7), testOrder.Items).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()
				repo.On("ListAdminIDs", mock.Anything).Return([]int64{1, 2}, nil).Once()
				notifier.On("Broadcast", mock.Anything, []int64{1, 2}, mock.Anything).Return([]telegram.Delivery{
					{ChatID: 1, Err: errors.New("blocked")},
					{ChatID: 2, Err: errors.New("timeout")},
				}).Once()
			},
			wantID: 7,
		},
		{
			name:     "no admins means no broadcast",
			verified: true,
			mockBehavior: func(repo *mockRepo, notifier *mockNotifier, publisher *mockPublisher) {
				repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(7), nil).Once()
				repo.On("SaveItems", mock.Anything, int64(7), testOrder.Items).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
				repo.On("ListAdminIDs", mock.Anything).Return([]int64{}, nil).Once()
			},
			wantID: 7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockRepo)
			notifier := new(mockNotifier)
			publisher := new(mockPublisher)
			tc.mockBehavior(repo, notifier, publisher)

			svc := newOrderService(t, repo, notifier, publisher, tc.verified)

			id, err := svc.CreateOrder(context.Background(), testOrder, "init-data")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}

			repo.AssertExpectations(t)
			notifier.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_TotalNotRecomputed(t *testing.T) {
	// Сумма сохраняется как прислал клиент, даже если не сходится с позициями
	repo := new(mockRepo)
	notifier := new(mockNotifier)
	publisher := new(mockPublisher)

	order := testOrder
	order.Total = 1

	repo.On("SaveOrder", mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
		return o.Total == 1
	})).Return(int64(8), nil).Once()
	repo.On("SaveItems", mock.Anything, int64(8), order.Items).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("ListAdminIDs", mock.Anything).Return(nil, nil).Once()

	svc := newOrderService(t, repo, notifier, publisher, true)

	id, err := svc.CreateOrder(context.Background(), order, "init-data")
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)

	repo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_AdminListCached(t *testing.T) {
	// Список админов запрашивается один раз, второй заказ берёт его из кэша
	repo := new(mockRepo)
	notifier := new(mockNotifier)
	publisher := new(mockPublisher)

	repo.On("SaveOrder", mock.Anything, mock.Anything).Return(int64(1), nil).Twice()
	repo.On("SaveItems", mock.Anything, int64(1), testOrder.Items).Return(nil).Twice()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()
	repo.On("ListAdminIDs", mock.Anything).Return([]int64{5}, nil).Once()
	notifier.On("Broadcast", mock.Anything, []int64{5}, mock.Anything).Return([]telegram.Delivery{{ChatID: 5}}).Twice()

	svc := newOrderService(t, repo, notifier, publisher, true)

	_, err := svc.CreateOrder(context.Background(), testOrder, "init-data")
	require.NoError(t, err)
	_, err = svc.CreateOrder(context.Background(), testOrder, "init-data")
	require.NoError(t, err)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: 3, Name: "Иван"}

	testCases := []struct {
		name         string
		orderID      int64
		mockBehavior func(repo *mockRepo)
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from repo",
			orderID: 3,
			mockBehavior: func(repo *mockRepo) {
				repo.On("GetOrderByID", mock.Anything, int64(3)).Return(validOrder, nil).Once()
			},
			want: validOrder,
		},
		{
			name:    "not found is not retried",
			orderID: 404,
			mockBehavior: func(repo *mockRepo) {
				repo.On("GetOrderByID", mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt succeeds",
			orderID: 3,
			mockBehavior: func(repo *mockRepo) {
				repo.On("GetOrderByID", mock.Anything, int64(3)).
					Return(entities.Order{}, errors.New("temporary error")).Once()
				repo.On("GetOrderByID", mock.Anything, int64(3)).Return(validOrder, nil).Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockRepo)
			tc.mockBehavior(repo)

			svc := newOrderService(t, repo, new(mockNotifier), new(mockPublisher), true)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetOrderByID_Cached(t *testing.T) {
	validOrder := entities.Order{ID: 3, Name: "Иван"}

	repo := new(mockRepo)
	repo.On("GetOrderByID", mock.Anything, int64(3)).Return(validOrder, nil).Once()

	svc := newOrderService(t, repo, new(mockNotifier), new(mockPublisher), true)

	first, err := svc.GetOrderByID(context.Background(), 3)
	require.NoError(t, err)

	// Второй запрос обслуживается из кэша
	second, err := svc.GetOrderByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}
