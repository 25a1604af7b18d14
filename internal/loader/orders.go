package loader

import (
	"context"
	"fmt"

	"github.com/dverduzco/ecompop/internal/model"
)

const (
	insertOrderSQL = `INSERT INTO pedido (id_cliente, fecha_pedido, estado, total)
		VALUES ($1, $2, $3, $4) RETURNING id_pedido`
	insertLineSQL = `INSERT INTO detallepedido (id_pedido, id_producto, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)`
	insertPaymentSQL = `INSERT INTO pago (id_pedido, fecha_pago, metodo, monto)
		VALUES ($1, $2, $3, $4)`
	insertShipmentSQL = `INSERT INTO envio (id_pedido, direccion, ciudad, fecha_envio)
		VALUES ($1, $2, $3, $4)`
)

// insertOrderTree writes one order and its dependents row by row, stamping
// the store-assigned order id into every dependent before it is inserted.
func insertOrderTree(ctx context.Context, store Store, o *model.Order) error {
	id, err := store.InsertReturningID(ctx, insertOrderSQL,
		o.CustomerID, o.PlacedAt, string(o.Status), o.Total.InexactFloat64())
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	o.Stamp(id)

	for _, line := range o.Lines {
		if err := store.Exec(ctx, insertLineSQL, line.Row()...); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}
	if o.Payment != nil {
		if err := store.Exec(ctx, insertPaymentSQL, o.Payment.Row()...); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}
	if o.Shipment != nil {
		if err := store.Exec(ctx, insertShipmentSQL, o.Shipment.Row()...); err != nil {
			return fmt.Errorf("failed to insert shipment: %w", err)
		}
	}
	return nil
}

func (t *Totals) count(o *model.Order) {
	t.Orders++
	t.Lines += len(o.Lines)
	if o.Payment != nil {
		t.Payments++
	}
	if o.Shipment != nil {
		t.Shipments++
	}
}
