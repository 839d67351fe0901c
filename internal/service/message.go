package service

import (
	"fmt"
	"strings"

	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/pkg/utils"
)

// buildOrderMessage собирает текст уведомления для администраторов.
func buildOrderMessage(order entities.Order) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("• %s — %s × %d", item.Name, utils.FormatPrice(item.Price), item.Quantity))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛍 Новый заказ — Marcelo Miracles #%d\n\n", order.ID)
	fmt.Fprintf(&b, "👤 Клиент: %s (@%s)\n", order.Name, order.Username)
	fmt.Fprintf(&b, "🆔 ID: %d\n", order.UserID)
	fmt.Fprintf(&b, "📞 %s\n\n", order.Phone)
	fmt.Fprintf(&b, "Товары:\n%s\n\n", strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "💰 Итого (без доставки): %s\n\n", utils.FormatPrice(order.Total))
	fmt.Fprintf(&b, "🕐 %s", order.CreatedAt.Format("02.01.2006 15:04"))

	return b.String()
}
