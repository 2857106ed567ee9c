// Package console implementa la interfaz de usuario por terminal: pantalla de
// login, menú principal y submódulos (catálogo, terceros, movimientos,
// usuarios). Solo muestra datos y captura teclado; la lógica vive en los casos
// de uso.
package console

import "github.com/jhoicas/almacen/internal/domain/entity"

// Session guarda al usuario autenticado. Toda mutación baja Actor() como
// responsable de auditoría.
type Session struct {
	user *entity.User
}

// SetUser abre sesión con el usuario autenticado.
func (s *Session) SetUser(u *entity.User) { s.user = u }

// Clear cierra la sesión.
func (s *Session) Clear() { s.user = nil }

// Active indica si hay sesión abierta.
func (s *Session) Active() bool { return s.user != nil }

// Actor devuelve el username de la sesión; cadena vacía sin sesión.
func (s *Session) Actor() string {
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

// Role devuelve el rol de la sesión; cadena vacía sin sesión.
func (s *Session) Role() string {
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// IsAdmin indica si la sesión pertenece a un administrador.
func (s *Session) IsAdmin() bool {
	return s.user != nil && s.user.Role == entity.RoleAdmin
}
