// Package service provides business logic for the application.
package service

import "fmt"

// BusinessError is a recoverable business-rule violation. Message is the
// exact user-facing text the HTTP layer returns verbatim.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

// AuthError is a recoverable authentication failure. The unknown-email and
// wrong-password cases differ only by message, never by error code; both
// surface as the same bad-request class to the caller.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ContractViolationError signals that the caller broke the service
// contract, e.g. calling Update or Delete on an entry without a persisted
// identity. It is raised via panic and is not meant to be recovered into a
// user-facing response; the HTTP recovery middleware turns it into a
// generic 500.
type ContractViolationError struct {
	Op string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("%s: entry has no identity", e.Op)
}

// Business-rule and authentication errors with fixed user-facing messages.
// Tests and the HTTP layer depend on the exact text.
var (
	ErrInvalidDescription = &BusinessError{Message: "Informe uma descrição válida!"}
	ErrInvalidMonth       = &BusinessError{Message: "Informe um mês válido!"}
	ErrInvalidYear        = &BusinessError{Message: "Informe um ano válido!"}
	ErrMissingUser        = &BusinessError{Message: "Informe um usuário!"}
	ErrInvalidValue       = &BusinessError{Message: "Informe um valor válido!"}
	ErrInvalidType        = &BusinessError{Message: "Informe um tipo válido!"}

	ErrEmailTaken = &BusinessError{Message: "Este email já está cadastrado!"}

	ErrUserNotFound  = &AuthError{Message: "Usuário não encontrado! Verifique o email!"}
	ErrWrongPassword = &AuthError{Message: "Senha incorreta!!"}
)
