// Package model defines the seven entities of the e-commerce schema and the
// business-state rules that tie the order family together.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pendiente"
	StatusProcessing OrderStatus = "Procesando"
	StatusShipped    OrderStatus = "Enviado"
	StatusDelivered  OrderStatus = "Entregado"
	StatusCancelled  OrderStatus = "Cancelado"
)

var OrderStatuses = []OrderStatus{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// RequiresPayment reports whether an order in this status must carry a
// payment record.
func (s OrderStatus) RequiresPayment() bool {
	return s == StatusProcessing || s == StatusShipped || s == StatusDelivered
}

// RequiresShipment reports whether an order in this status must carry a
// shipment record.
func (s OrderStatus) RequiresShipment() bool {
	return s == StatusShipped || s == StatusDelivered
}

type PaymentMethod string

var PaymentMethods = []PaymentMethod{
	"Tarjeta", "PayPal", "Transferencia", "Efectivo", "Criptomoneda",
}

type Customer struct {
	Name         string
	Email        string
	Phone        string
	RegisteredAt time.Time
	Active       bool
}

type Category struct {
	Name        string
	Description string
	Active      bool
}

type Product struct {
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Active      bool
}

type OrderLine struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order owns its lines and, depending on status, at most one payment and one
// shipment. Total is always the exact sum of line subtotals, computed at
// generation time; the store never backfills it.
type Order struct {
	ID         int64
	CustomerID int64
	PlacedAt   time.Time
	Status     OrderStatus
	Total      decimal.Decimal
	Lines      []OrderLine
	Payment    *Payment
	Shipment   *Shipment
}

// Stamp assigns the order id and propagates it to every dependent record.
func (o *Order) Stamp(id int64) {
	o.ID = id
	for i := range o.Lines {
		o.Lines[i].OrderID = id
	}
	if o.Payment != nil {
		o.Payment.OrderID = id
	}
	if o.Shipment != nil {
		o.Shipment.OrderID = id
	}
}

type Payment struct {
	OrderID int64
	PaidAt  time.Time
	Method  PaymentMethod
	Amount  decimal.Decimal
}

type Shipment struct {
	OrderID   int64
	Address   string
	City      string
	ShippedAt time.Time
}
