package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/usecase"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// fakeUserRepo implementa repository.UserRepository en memoria.
type fakeUserRepo struct {
	rows map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.rows {
		if existing.Username == u.Username && !existing.IsDeleted {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Username == username && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll(includeDeleted bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.rows {
		if includeDeleted || !u.IsDeleted {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) SoftDelete(id, actor string, now time.Time) error {
	if u, ok := r.rows[id]; ok {
		u.MarkDeleted(actor, now)
	}
	return nil
}

// TestRegisterYLogin: el password se guarda hasheado con bcrypt y el login
// verifica contra el hash.
func TestRegisterYLogin(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	user, err := uc.Register("maria", "secreta123", entity.RoleOperator, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", user.PasswordHash)
	assert.Equal(t, "admin", user.CreatedBy)

	logged, err := uc.Login("maria", "secreta123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = uc.Login("maria", "otra")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login("nadie", "secreta123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestRegister_UsernameDuplicado: conflicto de unicidad recuperable.
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Register("maria", "secreta123", entity.RoleOperator, "admin")
	require.NoError(t, err)

	_, err = uc.Register("maria", "otra456", entity.RoleAdmin, "admin")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestRegister_RolInvalido: solo Admin y Operator.
func TestRegister_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.Register("maria", "secreta123", "SuperUser", "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestUpdatePassword: cambia el hash y estampa al editor; el login viejo deja
// de funcionar.
func TestUpdatePassword(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	user, err := uc.Register("maria", "vieja", entity.RoleOperator, "admin")
	require.NoError(t, err)

	require.NoError(t, uc.UpdatePassword(user.ID, "nueva", "admin"))

	_, err = uc.Login("maria", "vieja")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	logged, err := uc.Login("maria", "nueva")
	require.NoError(t, err)
	assert.Equal(t, "admin", logged.LastModifiedBy)
}

// TestDelete_SoftDelete: el usuario borrado no puede loguearse pero su fila y
// auditoría siguen recuperables por ID.
func TestDelete_SoftDelete(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	user, err := uc.Register("maria", "secreta123", entity.RoleOperator, "admin")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(user.ID, "admin"))

	_, err = uc.Login("maria", "secreta123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	row, err := uc.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.IsDeleted)
	assert.Equal(t, "admin", row.DeletedBy)
}

// TestEnsureAdmin: siembra una sola vez y es idempotente.
func TestEnsureAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.EnsureAdmin("admin", "admin123"))
	require.NoError(t, uc.EnsureAdmin("admin", "admin123"))

	all, err := uc.GetAll(false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.RoleAdmin, all[0].Role)
	assert.Equal(t, usecase.SystemActor, all[0].CreatedBy)
}
