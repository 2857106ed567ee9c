package entity

// Customer representa un cliente de la empresa.
type Customer struct {
	Auditable
	Name  string
	TaxID string
}
