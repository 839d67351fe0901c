package service

import (
	"testing"
	"time"

	"github.com/marcelomiracles/storefront-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrderMessage(t *testing.T) {
	order := entities.Order{
		ID:        7,
		UserID:    123456789,
		Username:  "testuser",
		Name:      "Иван Иванов",
		Phone:     "+7 (999) 123-45-67",
		Total:     31000,
		CreatedAt: time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC),
		Items: []entities.OrderItem{
			{Name: "La Seine Coat Black", Price: 22000, Quantity: 1},
			{Name: "Paris Hoodie Black", Price: 9000, Quantity: 1},
		},
	}

	text := buildOrderMessage(order)

	assert.Contains(t, text, "Новый заказ — Marcelo Miracles #7")
	assert.Contains(t, text, "Иван Иванов (@testuser)")
	assert.Contains(t, text, "🆔 ID: 123456789")
	assert.Contains(t, text, "📞 +7 (999) 123-45-67")
	assert.Contains(t, text, "• La Seine Coat Black — 22 000 ₽ × 1")
	assert.Contains(t, text, "• Paris Hoodie Black — 9 000 ₽ × 1")
	assert.Contains(t, text, "Итого (без доставки): 31 000 ₽")
	assert.Contains(t, text, "🕐 14.03.2026 15:09")
}
