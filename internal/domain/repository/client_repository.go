package repository

import (
	"context"

	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
// List recibe el alcance ya resuelto; la implementación lo traduce a su
// filtro nativo y devuelve las filas ordenadas por nombre.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, scope ledger.Scope) ([]*entity.Client, error)
}
