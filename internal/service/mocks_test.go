package service_test

import (
	"context"

	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/internal/telegram"
	"github.com/marcelomiracles/storefront-service/pkg/trm"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) SaveOrder(ctx context.Context, o entities.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *mockRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockRepo) ListAdminIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *mockRepo) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) UpsertAdmin(ctx context.Context, admin entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Broadcast(ctx context.Context, chatIDs []int64, text string) []telegram.Delivery {
	args := m.Called(ctx, chatIDs, text)
	deliveries, _ := args.Get(0).([]telegram.Delivery)
	return deliveries
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, order entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// staticVerifier подменяет проверку подписи фиксированным ответом.
type staticVerifier bool

func (v staticVerifier) Verify(string) bool { return bool(v) }

// fakeTxManager выполняет callback без настоящей транзакции.
type fakeTxManager struct{}

func (fakeTxManager) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, nil, nil
}

func (fakeTxManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}

// fakeCache простой кэш на map, без TTL.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *fakeCache) Set(key string, value []byte) {
	c.data[key] = value
}

func (c *fakeCache) Delete(key string) {
	delete(c.data, key)
}
