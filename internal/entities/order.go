package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type OrderItem struct {
	Name     string
	Price    int
	Quantity int
}

type Order struct {
	ID        int64
	UserID    int64
	Username  string
	Name      string
	Phone     string
	// Итоговая сумма приходит от клиента и не пересчитывается по позициям
	Total     int
	CreatedAt time.Time

	Items []OrderItem
}

var (
	ErrOrderNotFound = errors.New("order not found")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}
