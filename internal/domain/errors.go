package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrInvalidRate tasa de cambio o alícuota fuera de rango (tasa <= 0, alícuota < 0).
	ErrInvalidRate = errors.New("tasa de cambio inválida")
	// ErrCajaCerrada la sesión de caja no está abierta.
	ErrCajaCerrada = errors.New("la sesión de caja está cerrada")
	// ErrAbonoExcedeSaldo el abono supera el saldo pendiente del crédito.
	ErrAbonoExcedeSaldo = errors.New("el abono excede el saldo pendiente")
	// ErrUnavailable un origen externo (POS) no está configurado o no respondió.
	ErrUnavailable = errors.New("servicio externo no disponible")
)
