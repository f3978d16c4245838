package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusOpen — заказ создан, позиции ещё можно добавлять.
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusProcessing — заказ собирается.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusFinished — заказ доставлен.
	OrderStatusFinished OrderStatus = "finished"
	// OrderStatusCanceled — заказ отменён.
	OrderStatusCanceled OrderStatus = "canceled"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusProcessing, OrderStatusShipped, OrderStatusFinished, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// PaymentMode — способ оплаты заказа.
type PaymentMode string

const (
	PaymentModeInvoice     PaymentMode = "invoice"
	PaymentModeCreditCard  PaymentMode = "credit_card"
	PaymentModeDirectDebit PaymentMode = "direct_debit"
	PaymentModePrepayment  PaymentMode = "prepayment"
)

// Valid проверяет, что способ оплаты поддерживается.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeInvoice, PaymentModeCreditCard, PaymentModeDirectDebit, PaymentModePrepayment:
		return true
	default:
		return false
	}
}

// OrderPosition — строка заказа. Принадлежит заказу и не существует без него.
type OrderPosition struct {
	ID            int64
	OrderID       int64
	ArticleNo     string
	Quantity      int32
	UnitPrice     decimal.Decimal
	Complaint     bool
	ComplaintText string
	CreatedAt     time.Time
}

// Subtotal возвращает стоимость позиции.
func (p OrderPosition) Subtotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt32(p.Quantity))
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID              int64
	CustomerID      int64
	Status          OrderStatus
	PaymentMode     PaymentMode
	ShippingAddress Address
	Positions       []OrderPosition
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Total возвращает сумму заказа по всем позициям.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Positions {
		total = total.Add(p.Subtotal())
	}
	return total
}

// Position ищет позицию заказа по идентификатору.
func (o Order) Position(id int64) (OrderPosition, bool) {
	for _, p := range o.Positions {
		if p.ID == id {
			return p, true
		}
	}
	return OrderPosition{}, false
}

// MergePositions объединяет позиции с одинаковым артикулом, сохраняя порядок первого появления.
// Сумма считается в int64; итог больше MaxInt32 даёт ErrArticleQuantity,
// такого остатка не бывает.
func MergePositions(positions []OrderPosition) ([]OrderPosition, error) {
	merged := make([]OrderPosition, 0, len(positions))
	totals := make([]int64, 0, len(positions))
	index := make(map[string]int, len(positions))
	for _, p := range positions {
		i, ok := index[p.ArticleNo]
		if !ok {
			i = len(merged)
			index[p.ArticleNo] = i
			merged = append(merged, p)
			totals = append(totals, 0)
		}
		totals[i] += int64(p.Quantity)
		if totals[i] > math.MaxInt32 {
			return nil, WithKey(ErrArticleQuantity, p.ArticleNo)
		}
		merged[i].Quantity = int32(totals[i])
	}
	return merged, nil
}

// StockRequest — потребность заказа в одном артикуле.
type StockRequest struct {
	ArticleNo string
	Quantity  int32
}

// StockRequests возвращает суммарную потребность позиций по артикулам.
func StockRequests(positions []OrderPosition) ([]StockRequest, error) {
	merged, err := MergePositions(positions)
	if err != nil {
		return nil, err
	}
	out := make([]StockRequest, 0, len(merged))
	for _, p := range merged {
		out = append(out, StockRequest{ArticleNo: p.ArticleNo, Quantity: p.Quantity})
	}
	return out, nil
}
