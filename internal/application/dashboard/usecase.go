// Package dashboard contiene el caso de uso del tablero de stock: clientes
// visibles, cifras agregadas del libro y movimientos recientes, todo bajo el
// alcance del usuario autenticado.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/application/movement"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

const defaultRecentMovements = 10 // filas de la tabla "movimientos recientes"

// UseCase genera el resumen del tablero.
//
// Regla de corrección central: las estadísticas se calculan sobre TODOS los
// movimientos visibles bajo el alcance, mientras que la tabla de recientes
// usa el mismo filtro con límite. Mismo filtro, distinto número de filas.
type UseCase struct {
	clientRepo   repository.ClientRepository
	movementRepo repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(clientRepo repository.ClientRepository, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{clientRepo: clientRepo, movementRepo: movementRepo}
}

// GetSummary construye el DashboardSummaryDTO para el usuario dado.
//
// Tres llamadas en paralelo:
//  1. clientes visibles            → ClientCount
//  2. movimientos sin límite       → Summarize (cifras de stock)
//  3. movimientos con límite       → RecentMovements
func (uc *UseCase) GetSummary(ctx context.Context, user *entity.User, limit int) (*dto.DashboardSummaryDTO, error) {
	if limit <= 0 {
		limit = defaultRecentMovements
	}
	scope := ledger.ResolveScope(user)

	type clientsResult struct {
		clients []*entity.Client
		err     error
	}
	type movementsResult struct {
		rows []repository.MovementRow
		err  error
	}

	clientsCh := make(chan clientsResult, 1)
	allCh := make(chan movementsResult, 1)
	recentCh := make(chan movementsResult, 1)

	go func() {
		clients, err := uc.clientRepo.List(ctx, scope)
		clientsCh <- clientsResult{clients, err}
	}()
	go func() {
		rows, err := uc.movementRepo.List(ctx, ledger.ComposeQuery(scope, 0))
		allCh <- movementsResult{rows, err}
	}()
	go func() {
		rows, err := uc.movementRepo.List(ctx, ledger.ComposeQuery(scope, limit))
		recentCh <- movementsResult{rows, err}
	}()

	clients := <-clientsCh
	all := <-allCh
	recent := <-recentCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", clients.err)
	}
	if all.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", all.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}

	movements := make([]entity.StockMovement, len(all.rows))
	for i, row := range all.rows {
		movements[i] = row.Movement
	}
	summary := ledger.Summarize(movements)

	return &dto.DashboardSummaryDTO{
		TotalIn:         summary.TotalIn,
		TotalOut:        summary.TotalOut,
		CurrentStock:    summary.CurrentStock,
		UnreadComments:  summary.UnreadComments,
		ClientCount:     len(clients.clients),
		RecentMovements: movement.ToResponses(recent.rows),
		DateLabel:       monthLabel(time.Now()),
	}, nil
}

// monthLabel devuelve la etiqueta del mes en francés (el tablero se muestra
// en francés), ej: "Août 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
