package cart

import "github.com/marcelomiracles/storefront-service/internal/entities"

// Line позиция корзины: товар и его количество.
type Line struct {
	Product  entities.Product
	Quantity int
}

// Cart хранит количество по id товара. Позиции с нулевым количеством
// удаляются, порядок добавления сохраняется.
type Cart struct {
	quantities map[string]int
	products   map[string]entities.Product
	order      []string
}

func New() *Cart {
	return &Cart{
		quantities: make(map[string]int),
		products:   make(map[string]entities.Product),
	}
}

// Add добавляет товар. Повторное добавление увеличивает количество,
// а не создаёт новую позицию.
func (c *Cart) Add(p entities.Product) {
	if _, ok := c.quantities[p.ID]; !ok {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	c.quantities[p.ID]++
}

// Update изменяет количество на delta. Количество не опускается ниже нуля,
// нулевая позиция удаляется из корзины.
func (c *Cart) Update(id string, delta int) {
	quantity, ok := c.quantities[id]
	if !ok {
		return
	}
	quantity += delta
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	c.quantities[id] = quantity
}

func (c *Cart) Remove(id string) {
	if _, ok := c.quantities[id]; !ok {
		return
	}
	delete(c.quantities, id)
	delete(c.products, id)
	for i, pid := range c.order {
		if pid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Quantity(id string) int {
	return c.quantities[id]
}

// Lines возвращает позиции в порядке добавления.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, Line{Product: c.products[id], Quantity: c.quantities[id]})
	}
	return lines
}

// Total суммарная стоимость всех позиций.
func (c *Cart) Total() int {
	total := 0
	for id, quantity := range c.quantities {
		total += c.products[id].Price * quantity
	}
	return total
}

// Count суммарное количество товаров.
func (c *Cart) Count() int {
	count := 0
	for _, quantity := range c.quantities {
		count += quantity
	}
	return count
}

func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.products = make(map[string]entities.Product)
	c.order = nil
}

// Items конвертирует корзину в позиции заказа.
func (c *Cart) Items() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(c.order))
	for _, line := range c.Lines() {
		items = append(items, entities.OrderItem{
			Name:     line.Product.Name,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
		})
	}
	return items
}
