package repo

import (
	"database/sql"
	"time"

	"github.com/marcelomiracles/storefront-service/internal/entities"
)

type Order struct {
	ID        int64          `db:"id"`
	UserID    int64          `db:"user_id"`
	Username  sql.NullString `db:"username"`
	Name      string         `db:"name"`
	Phone     string         `db:"phone"`
	Total     int            `db:"total"`
	CreatedAt time.Time      `db:"created_at"`
}

type OrderItem struct {
	OrderID  int64  `db:"order_id"`
	Name     string `db:"name"`
	Price    int    `db:"price"`
	Quantity int    `db:"quantity"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Username:  nullStringToString(o.Username),
		Name:      o.Name,
		Phone:     o.Phone,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		Name:     i.Name,
		Price:    i.Price,
		Quantity: i.Quantity,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
