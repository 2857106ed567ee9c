package entity

// Roles válidos para User.
const (
	RoleAdmin    = "Admin"
	RoleOperator = "Operator"
)

// User representa un usuario del sistema. Su Username es el actor que queda
// estampado en los campos de auditoría de toda mutación que realice.
type User struct {
	Auditable
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string
}
