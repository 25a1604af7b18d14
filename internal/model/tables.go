package model

// Table describes one store table: its name and the columns the engine
// writes. Surrogate primary keys are store-assigned and never listed; the
// stream-copy path relies on the identity sequence handing out ids in
// insertion order instead of writing them.
type Table struct {
	Name    string
	Columns []string
}

var (
	TableCustomer = Table{
		Name:    "cliente",
		Columns: []string{"nombre", "email", "telefono", "fecha_registro", "activo"},
	}
	TableCategory = Table{
		Name:    "categoria",
		Columns: []string{"nombre", "descripcion", "activo"},
	}
	TableProduct = Table{
		Name:    "producto",
		Columns: []string{"id_categoria", "nombre", "descripcion", "precio", "stock", "activo"},
	}
	TableOrder = Table{
		Name:    "pedido",
		Columns: []string{"id_cliente", "fecha_pedido", "estado", "total"},
	}
	TableOrderLine = Table{
		Name:    "detallepedido",
		Columns: []string{"id_pedido", "id_producto", "cantidad", "precio_unitario"},
	}
	TablePayment = Table{
		Name:    "pago",
		Columns: []string{"id_pedido", "fecha_pago", "metodo", "monto"},
	}
	TableShipment = Table{
		Name:    "envio",
		Columns: []string{"id_pedido", "direccion", "ciudad", "fecha_envio"},
	}
)

// TruncationOrder lists every table child-first so a truncate pass never
// trips a foreign key.
var TruncationOrder = []Table{
	TablePayment, TableShipment, TableOrderLine, TableOrder,
	TableProduct, TableCategory, TableCustomer,
}

// ReportOrder is the order tables appear in the statistics summary.
var ReportOrder = []Table{
	TableCustomer, TableCategory, TableProduct, TableOrder,
	TableOrderLine, TablePayment, TableShipment,
}

func (c Customer) Row() []any {
	return []any{c.Name, c.Email, c.Phone, c.RegisteredAt, c.Active}
}

func (c Category) Row() []any {
	return []any{c.Name, c.Description, c.Active}
}

func (p Product) Row() []any {
	return []any{p.CategoryID, p.Name, p.Description, p.Price.InexactFloat64(), p.Stock, p.Active}
}

func (o Order) Row() []any {
	return []any{o.CustomerID, o.PlacedAt, string(o.Status), o.Total.InexactFloat64()}
}

func (l OrderLine) Row() []any {
	return []any{l.OrderID, l.ProductID, l.Quantity, l.UnitPrice.InexactFloat64()}
}

func (p Payment) Row() []any {
	return []any{p.OrderID, p.PaidAt, string(p.Method), p.Amount.InexactFloat64()}
}

func (s Shipment) Row() []any {
	return []any{s.OrderID, s.Address, s.City, s.ShippedAt}
}
