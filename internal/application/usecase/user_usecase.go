package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// SystemActor es el actor estampado en mutaciones hechas por el propio sistema
// (ej. la semilla del usuario administrador).
const SystemActor = "SYSTEM"

// UserUseCase gestiona usuarios: registro, login y administración.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Username duplicado => ErrDuplicate.
func (uc *UserUseCase) Register(username, password, role, actor string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || actor == "" {
		return nil, domain.ErrInvalidInput
	}
	if role != entity.RoleAdmin && role != entity.RoleOperator {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	user.ID = uuid.New().String()
	user.TouchCreated(actor, time.Now())
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica username/password contra el hash almacenado. Usuario
// inexistente (o borrado) y password incorrecto responden igual: ErrUnauthorized.
func (uc *UserUseCase) Login(username, password string) (*entity.User, error) {
	user, err := uc.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// GetAll lista usuarios; por defecto excluye borrados.
func (uc *UserUseCase) GetAll(includeDeleted bool) ([]*entity.User, error) {
	return uc.repo.GetAll(includeDeleted)
}

// GetByID obtiene un usuario (incluye borrados: auditoría consultable).
func (uc *UserUseCase) GetByID(id string) (*entity.User, error) {
	return uc.repo.GetByID(id)
}

// UpdatePassword cambia la contraseña de un usuario con estampa de edición.
func (uc *UserUseCase) UpdatePassword(id, newPassword, actor string) error {
	if id == "" || newPassword == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.IsDeleted {
		return domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.TouchModified(actor, time.Now())
	return uc.repo.Update(user)
}

// Delete marca un usuario como borrado; su nombre sigue apareciendo en las
// estampas de auditoría históricas.
func (uc *UserUseCase) Delete(id, actor string) error {
	if id == "" || actor == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id, actor, time.Now())
}

// EnsureAdmin siembra el usuario administrador si no existe todavía, para que
// el sistema nunca arranque sin acceso.
func (uc *UserUseCase) EnsureAdmin(username, password string) error {
	existing, err := uc.repo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = uc.Register(username, password, entity.RoleAdmin, SystemActor)
	if err == domain.ErrDuplicate {
		return nil
	}
	return err
}
