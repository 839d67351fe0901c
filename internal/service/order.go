package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/internal/telegram"
	"github.com/marcelomiracles/storefront-service/pkg/trm"
	"github.com/marcelomiracles/storefront-service/pkg/utils"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) (int64, error)
	SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	ListAdminIDs(ctx context.Context) ([]int64, error)
}

type Verifier interface {
	Verify(initData string) bool
}

type Notifier interface {
	Broadcast(ctx context.Context, chatIDs []int64, text string) []telegram.Delivery
}

type Publisher interface {
	Publish(ctx context.Context, order entities.Order) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	verifier  Verifier
	notifier  Notifier
	events    Publisher
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	verifier Verifier,
	notifier Notifier,
	events Publisher,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		verifier:  verifier,
		notifier:  notifier,
		events:    events,
		cache:     cache,
	}
}

var saveRetryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateOrder сохраняет заказ и возвращает его id. Уведомления админам и
// публикация события выполняются после записи и не влияют на результат.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order, initData string) (int64, error) {
	if !s.verifier.Verify(initData) {
		return 0, entities.ErrInvalidInitData
	}

	var id int64
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			id, err = s.repo.SaveOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveItems(ctx, id, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			return nil
		})
	}

	if err := utils.Retry(saveRetryConfig, fn); err != nil {
		return 0, err
	}

	order.ID = id
	order.CreatedAt = time.Now()
	s.logger.Debug("order saved", slog.Int64("order_id", id))

	if err := s.events.Publish(ctx, order); err != nil {
		s.logger.Error("failed to publish order event", slog.Int64("order_id", id), slog.Any("error", err))
	}

	s.notifyAdmins(ctx, order)

	return id, nil
}

func (s *orderService) notifyAdmins(ctx context.Context, order entities.Order) {
	ids, err := s.adminIDs(ctx)
	if err != nil {
		s.logger.Error("failed to list admins", slog.Any("error", err))
		return
	}
	if len(ids) == 0 {
		return
	}

	deliveries := s.notifier.Broadcast(ctx, ids, buildOrderMessage(order))
	telegram.LogFailures(s.logger, deliveries)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	key := strconv.FormatInt(orderID, 10)

	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// Битую запись выбрасываем и идём в базу
		s.cache.Delete(key)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(saveRetryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("order_id", orderID), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(key, data)
	return order, nil
}
