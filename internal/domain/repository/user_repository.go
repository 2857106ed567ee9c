package repository

import (
	"time"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername busca solo entre usuarios activos (para login).
	GetByUsername(username string) (*entity.User, error)
	GetAll(includeDeleted bool) ([]*entity.User, error)
	Update(user *entity.User) error
	SoftDelete(id, actor string, now time.Time) error
}
