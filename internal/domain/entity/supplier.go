package entity

// Supplier representa un proveedor. Todo lote referencia a un proveedor activo.
type Supplier struct {
	Auditable
	Name         string
	ContactEmail string
}
