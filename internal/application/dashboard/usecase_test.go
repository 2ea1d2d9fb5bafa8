package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agristock/depot-api/internal/application/dashboard"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba del gateway: reproducen el contrato de los puertos sobre
// snapshots en memoria, incluido el orden del libro y el corte por alcance.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients []*entity.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, c *entity.Client) error {
	f.clients = append(f.clients, c)
	return nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) List(ctx context.Context, scope ledger.Scope) ([]*entity.Client, error) {
	if scope.IsEmpty() {
		return nil, nil
	}
	var out []*entity.Client
	for _, c := range f.clients {
		if scope.AllowsClient(*c) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements   []entity.StockMovement
	clientNames map[string]string
}

func (f *fakeMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(ctx context.Context, q ledger.Query) ([]repository.MovementRow, error) {
	if q.Scope.IsEmpty() {
		return nil, nil
	}
	var visible []entity.StockMovement
	for _, m := range f.movements {
		if q.Scope.AllowsMovement(m) {
			visible = append(visible, m)
		}
	}
	// Mismo criterio que el almacén: orden primero, límite después.
	top := ledger.Top(visible, q.Limit)
	rows := make([]repository.MovementRow, len(top))
	for i, m := range top {
		rows[i] = repository.MovementRow{Movement: m, ClientName: f.clientNames[m.ClientID]}
	}
	return rows, nil
}

func (f *fakeMovementRepo) MarkCommentRead(ctx context.Context, id string) error {
	for i := range f.movements {
		if f.movements[i].ID == id {
			f.movements[i].IsCommentRead = true
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario compartido: dos clientes, cinco movimientos en fechas distintas.
// ──────────────────────────────────────────────────────────────────────────────

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func mov(id, clientID, typ string, kg float64, d int) entity.StockMovement {
	return entity.StockMovement{
		ID:          id,
		ClientID:    clientID,
		Type:        typ,
		Product:     "Pommes",
		TotalWeight: decimal.NewFromFloat(kg),
		Date:        day(d),
		CreatedAt:   day(d),
	}
}

func seedRepos() (*fakeClientRepo, *fakeMovementRepo) {
	clients := &fakeClientRepo{clients: []*entity.Client{
		{ID: "c1", Name: "Ferme Dupont"},
		{ID: "c2", Name: "Ferme Martin"},
	}}
	movements := &fakeMovementRepo{
		clientNames: map[string]string{"c1": "Ferme Dupont", "c2": "Ferme Martin"},
		movements: []entity.StockMovement{
			mov("m1", "c1", entity.MovementIn, 100, 1),
			mov("m2", "c1", entity.MovementOut, 30, 2),
			mov("m3", "c2", entity.MovementIn, 50, 3),
			mov("m4", "c2", entity.MovementOut, 10, 4),
			mov("m5", "c1", entity.MovementIn, 5, 5),
		},
	}
	// m5 trae comentario de agricultor sin leer
	movements.movements[4].FarmerComment = "Caisses abîmées"
	return clients, movements
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un Admin con límite 2: la tabla de recientes se trunca pero las cifras se
// calculan sobre los cinco movimientos, no sobre la página visible.
func TestGetSummary_AdminCifrasSobreTodoElLibro(t *testing.T) {
	clients, movements := seedRepos()
	uc := dashboard.NewUseCase(clients, movements)

	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin, Status: entity.StatusActive}
	out, err := uc.GetSummary(context.Background(), admin, 2)
	require.NoError(t, err)

	assert.Equal(t, "155", out.TotalIn.String(), "entradas: 100+50+5")
	assert.Equal(t, "40", out.TotalOut.String(), "salidas: 30+10")
	assert.Equal(t, "115", out.CurrentStock.String())
	assert.Equal(t, 1, out.UnreadComments)
	assert.Equal(t, 2, out.ClientCount)

	require.Len(t, out.RecentMovements, 2, "la página visible respeta el límite")
	assert.Equal(t, "m5", out.RecentMovements[0].ID, "primero el más reciente")
	assert.Equal(t, "m4", out.RecentMovements[1].ID)
	assert.Equal(t, "Ferme Dupont", out.RecentMovements[0].ClientName)
	assert.NotEmpty(t, out.DateLabel)
}

// Un Farmer afiliado a c1 solo ve su cliente: cifras, conteo y recientes
// se calculan sobre las filas de c1.
func TestGetSummary_FarmerSoloSuCliente(t *testing.T) {
	clients, movements := seedRepos()
	uc := dashboard.NewUseCase(clients, movements)

	farmer := &entity.User{ID: "u2", Role: entity.RoleFarmer, ClientID: "c1", Status: entity.StatusActive}
	out, err := uc.GetSummary(context.Background(), farmer, 10)
	require.NoError(t, err)

	assert.Equal(t, "105", out.TotalIn.String(), "entradas de c1: 100+5")
	assert.Equal(t, "30", out.TotalOut.String())
	assert.Equal(t, "75", out.CurrentStock.String())
	assert.Equal(t, 1, out.ClientCount, "solo su cliente afiliado")

	require.Len(t, out.RecentMovements, 3)
	for _, m := range out.RecentMovements {
		assert.Equal(t, "c1", m.ClientID, "ninguna fila de otro cliente debe filtrarse")
	}
}

// Un Farmer sin cliente afiliado resuelve a alcance vacío: tablero en cero,
// sin error y sin filas de nadie.
func TestGetSummary_FarmerSinClienteTableroVacio(t *testing.T) {
	clients, movements := seedRepos()
	uc := dashboard.NewUseCase(clients, movements)

	orphan := &entity.User{ID: "u3", Role: entity.RoleFarmer, Status: entity.StatusActive}
	out, err := uc.GetSummary(context.Background(), orphan, 10)
	require.NoError(t, err)

	assert.True(t, out.TotalIn.IsZero())
	assert.True(t, out.TotalOut.IsZero())
	assert.True(t, out.CurrentStock.IsZero())
	assert.Equal(t, 0, out.UnreadComments)
	assert.Equal(t, 0, out.ClientCount)
	assert.Empty(t, out.RecentMovements)
}

// Un rol desconocido también es alcance vacío, no acceso total.
func TestGetSummary_RolDesconocidoTableroVacio(t *testing.T) {
	clients, movements := seedRepos()
	uc := dashboard.NewUseCase(clients, movements)

	stranger := &entity.User{ID: "u4", Role: entity.Role("Superuser"), Status: entity.StatusActive}
	out, err := uc.GetSummary(context.Background(), stranger, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, out.ClientCount)
	assert.Empty(t, out.RecentMovements)
	assert.True(t, out.CurrentStock.IsZero())
}

// Con límite <= 0 se usa el tamaño de página por defecto (10 filas).
func TestGetSummary_LimiteCeroUsaDefault(t *testing.T) {
	clients, movements := seedRepos()
	uc := dashboard.NewUseCase(clients, movements)

	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin, Status: entity.StatusActive}
	out, err := uc.GetSummary(context.Background(), admin, 0)
	require.NoError(t, err)

	// Hay 5 movimientos, todos caben en la página por defecto.
	assert.Len(t, out.RecentMovements, 5)
	assert.Equal(t, "115", out.CurrentStock.String())
}
