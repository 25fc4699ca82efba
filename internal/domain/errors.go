package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrStoreNotSelected  = errors.New("tienda no seleccionada")
	ErrCartEmpty         = errors.New("el carrito está vacío")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
