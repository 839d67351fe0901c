package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOrder вставляет заказ и возвращает присвоенный id.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "username", "name", "phone", "total").
		Values(o.UserID, nullString(o.Username), o.Name, o.Phone, o.Total).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "name", "price", "quantity")

	for _, it := range items {
		q = q.Values(orderID, it.Name, it.Price, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	var (
		order Order
		items []OrderItem
	)

	// Заказ и позиции не связаны по записи, читаем параллельно
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query, args := r.qb.Select("id", "user_id", "username", "name", "phone", "total", "created_at").
			From("orders").
			Where(sq.Eq{"id": orderID}).
			MustSql()

		err := r.getContext(ctx, &order, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query, args := r.qb.Select("order_id", "name", "price", "quantity").
			From("order_items").
			Where(sq.Eq{"order_id": orderID}).
			OrderBy("id").
			MustSql()

		if err := r.selectContext(ctx, &items, query, args...); err != nil {
			return fmt.Errorf("failed to get items: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) CountAdmins(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("admins").MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// UpsertAdmin идемпотентен: повторная активация обновляет username.
func (r *postgresRepo) UpsertAdmin(ctx context.Context, admin entities.Admin) error {
	query, args := r.qb.Insert("admins").
		Columns("user_id", "username").
		Values(admin.UserID, nullString(admin.Username)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert admin: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListAdminIDs(ctx context.Context) ([]int64, error) {
	query, args := r.qb.Select("user_id").
		From("admins").
		OrderBy("activated_at").
		MustSql()

	var ids []int64
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return ids, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
