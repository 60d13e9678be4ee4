package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited indica un 429 del proveedor. No se reintenta aqui;
	// la politica de reintento es del caller.
	ErrRateLimited = errors.New("upstream rate limited")

	// ErrQuotaExhausted indica un 402 del proveedor (creditos agotados).
	ErrQuotaExhausted = errors.New("upstream quota exhausted")
)

// UpstreamError conserva el status y el cuerpo de cualquier otra respuesta
// no exitosa del proveedor, para diagnostico en el caller.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: status=%d", e.Status)
}
