package handler

import (
	"time"

	"github.com/marcelomiracles/storefront-service/internal/entities"
)

// ActivateAdminRequest запрос на активацию администратора
type ActivateAdminRequest struct {
	UserID   int64  `json:"user_id" validate:"required"`
	Username string `json:"username"`
	InitData string `json:"init_data" validate:"required"`
}

// ActivateAdminResponse результат активации
type ActivateAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderItem позиция заказа
type OrderItem struct {
	Name     string `json:"name" validate:"required"`
	Price    int    `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest запрос на оформление заказа
type CreateOrderRequest struct {
	UserID   int64       `json:"user_id" validate:"required"`
	Username string      `json:"username"`
	Name     string      `json:"name" validate:"required"`
	Phone    string      `json:"phone" validate:"required"`
	Items    []OrderItem `json:"items" validate:"required,min=1,dive"`
	Total    int         `json:"total" validate:"gte=0"`
	InitData string      `json:"init_data" validate:"required"`
}

// CreateOrderResponse результат оформления заказа
type CreateOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"order_id"`
}

// Order заказ
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Username  string      `json:"username,omitempty"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Items     []OrderItem `json:"items,omitempty"`
	Total     int         `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

// Product товар каталога
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

func OrderRequestToEntity(req CreateOrderRequest) entities.Order {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem(it))
	}

	return entities.Order{
		UserID:   req.UserID,
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
		Total:    req.Total,
		Items:    items,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem(it))
	}

	return Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Username:  o.Username,
		Name:      o.Name,
		Phone:     o.Phone,
		Items:     items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product(p)
}
