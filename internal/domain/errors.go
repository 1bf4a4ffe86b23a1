package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound = errors.New("usuario no encontrado")

	// ErrEmailAlreadyExists: el email ya tiene una cuenta registrada.
	// Lo devuelve tanto el chequeo previo del use case como el adaptador
	// de persistencia cuando el constraint único salta en el INSERT.
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// ErrInvalidCredentials cubre "cuenta inexistente" y "password incorrecto"
	// con el mismo valor: el caller no puede distinguirlos (anti-enumeración).
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// ErrValidation entrada malformada (email inválido, password débil, campo faltante).
	ErrValidation = errors.New("entrada inválida")

	// ErrStoreUnavailable fallo transitorio de persistencia. El use case lo
	// devuelve en lugar del error crudo del driver; no se reintenta aquí.
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
)
