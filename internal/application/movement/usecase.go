// Package movement contiene los casos de uso sobre el libro de movimientos:
// registrar, listar bajo alcance y marcar comentarios como leídos.
package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase casos de uso del libro de movimientos.
type UseCase struct {
	movementRepo repository.StockMovementRepository
	userRepo     repository.UserRepository
	clientRepo   repository.ClientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	movementRepo repository.StockMovementRepository,
	userRepo repository.UserRepository,
	clientRepo repository.ClientRepository,
) *UseCase {
	return &UseCase{movementRepo: movementRepo, userRepo: userRepo, clientRepo: clientRepo}
}

// Record registra un movimiento. Camino de escritura: el perfil del actor se
// relee del almacén (los claims del token pueden estar desactualizados), una
// cuenta suspendida se rechaza siempre, y el alcance del actor debe permitir
// escribir sobre el cliente destino.
func (uc *UseCase) Record(ctx context.Context, actorID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if actor.Status != entity.StatusActive {
		return nil, domain.ErrForbidden // suspendido: sin escrituras
	}
	scope := ledger.ResolveScope(actor)
	if !scope.AllowsWrite(in.ClientID) {
		return nil, domain.ErrForbidden
	}

	if in.Type != entity.MovementIn && in.Type != entity.MovementOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Product == "" {
		return nil, domain.ErrInvalidInput
	}
	if anyNegative(in.TotalWeight, in.PlasticBoxWeight, in.WoodBoxWeight, in.ProductWeight) ||
		in.PlasticBoxCount < 0 || in.WoodBoxCount < 0 {
		return nil, domain.ErrInvalidInput
	}

	date := todayUTC()
	if in.Date != "" {
		date, err = time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	m := &entity.StockMovement{
		ID:               uuid.New().String(),
		ClientID:         in.ClientID,
		Type:             in.Type,
		Product:          in.Product,
		TotalWeight:      in.TotalWeight,
		PlasticBoxCount:  in.PlasticBoxCount,
		PlasticBoxWeight: in.PlasticBoxWeight,
		WoodBoxCount:     in.WoodBoxCount,
		WoodBoxWeight:    in.WoodBoxWeight,
		ProductWeight:    in.ProductWeight,
		Date:             date,
		RecordedBy:       actor.ID,
		Comment:          in.Comment,
		FarmerComment:    in.FarmerComment,
		IsCommentRead:    false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.movementRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := ToResponse(repository.MovementRow{
		Movement:       *m,
		ClientName:     client.Name,
		RecordedByName: actor.Name,
	})
	return &resp, nil
}

// List devuelve los movimientos visibles bajo el alcance del actor, ordenados
// por fecha desc con desempate por created_at desc; limit 0 = sin límite.
func (uc *UseCase) List(ctx context.Context, actor *entity.User, limit int) ([]dto.MovementResponse, error) {
	q := ledger.ComposeQuery(ledger.ResolveScope(actor), limit)
	rows, err := uc.movementRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return ToResponses(rows), nil
}

// MarkCommentRead marca como leído el comentario del agricultor. Solo Admin;
// como toda escritura, el perfil se relee y una cuenta suspendida se rechaza.
func (uc *UseCase) MarkCommentRead(ctx context.Context, actorID, movementID string) error {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if actor.Status != entity.StatusActive {
		return domain.ErrForbidden
	}
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.movementRepo.MarkCommentRead(ctx, movementID)
}

// todayUTC devuelve la medianoche UTC del día calendario UTC actual. Las
// fechas del libro se almacenan como DATE; derivar el día de los componentes
// UTC evita que el día por defecto dependa de la zona horaria del proceso.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func anyNegative(weights ...decimal.Decimal) bool {
	for _, w := range weights {
		if w.IsNegative() {
			return true
		}
	}
	return false
}

// ToResponse convierte una fila del gateway en DTO de respuesta.
func ToResponse(row repository.MovementRow) dto.MovementResponse {
	m := row.Movement
	return dto.MovementResponse{
		ID:               m.ID,
		ClientID:         m.ClientID,
		ClientName:       row.ClientName,
		Type:             m.Type,
		Product:          m.Product,
		TotalWeight:      m.TotalWeight,
		PlasticBoxCount:  m.PlasticBoxCount,
		PlasticBoxWeight: m.PlasticBoxWeight,
		WoodBoxCount:     m.WoodBoxCount,
		WoodBoxWeight:    m.WoodBoxWeight,
		ProductWeight:    m.ProductWeight,
		Date:             m.Date,
		RecordedBy:       m.RecordedBy,
		RecordedByName:   row.RecordedByName,
		Comment:          m.Comment,
		FarmerComment:    m.FarmerComment,
		IsCommentRead:    m.IsCommentRead,
		CreatedAt:        m.CreatedAt,
	}
}

// ToResponses convierte un lote de filas preservando el orden.
func ToResponses(rows []repository.MovementRow) []dto.MovementResponse {
	out := make([]dto.MovementResponse, len(rows))
	for i, row := range rows {
		out[i] = ToResponse(row)
	}
	return out
}
