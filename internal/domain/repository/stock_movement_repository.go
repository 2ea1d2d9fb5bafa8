package repository

import (
	"context"

	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
)

// MovementRow es una fila de movimiento con los nombres desnormalizados del
// cliente y de quien registró, para listados. Los produce el gateway; los
// use cases los convierten en DTO.
type MovementRow struct {
	Movement       entity.StockMovement
	ClientName     string
	RecordedByName string
}

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). List ejecuta un descriptor ledger.Query: filtro por
// alcance, orden fijo (fecha desc, created_at desc) y límite opcional
// aplicado después del orden. Un alcance vacío devuelve cero filas sin
// consultar el almacén.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	List(ctx context.Context, q ledger.Query) ([]MovementRow, error)
	// MarkCommentRead marca como leído el comentario del agricultor:
	// la única mutación in situ permitida sobre una fila del libro.
	MarkCommentRead(ctx context.Context, id string) error
}
