package entity

import "time"

// Auditable agrupa los campos de auditoría que toda entidad del sistema lleva
// (creación, última modificación y borrado lógico). Se embebe por valor en cada
// entidad; los repositorios persisten estas columnas junto con las propias.
type Auditable struct {
	ID             string
	CreatedAt      time.Time
	CreatedBy      string
	LastModifiedAt time.Time
	LastModifiedBy string
	IsDeleted      bool
	DeletedAt      *time.Time
	DeletedBy      string
}

// TouchCreated estampa los campos de creación (y de modificación, que nacen iguales).
func (a *Auditable) TouchCreated(actor string, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = actor
	a.LastModifiedAt = now
	a.LastModifiedBy = actor
}

// TouchModified estampa la última modificación.
func (a *Auditable) TouchModified(actor string, now time.Time) {
	a.LastModifiedAt = now
	a.LastModifiedBy = actor
}

// MarkDeleted marca el borrado lógico. La fila nunca se elimina físicamente.
func (a *Auditable) MarkDeleted(actor string, now time.Time) {
	a.IsDeleted = true
	a.DeletedAt = &now
	a.DeletedBy = actor
	a.TouchModified(actor, now)
}
