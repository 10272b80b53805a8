package ports

import "context"

// AssetStore puerto de persistencia de binarios (screenshots de diseños).
// Store devuelve la URL de recuperación: absoluta (backend remoto) o relativa
// a la raíz pública (backend local, ej. "/uploads/design_x.png"). La capa de
// respuesta absolutiza las relativas antes de devolverlas a clientes externos.
// Los fallos de I/O o del servicio remoto envuelven domain.ErrStorage.
type AssetStore interface {
	Store(ctx context.Context, data []byte, name string) (string, error)
}
