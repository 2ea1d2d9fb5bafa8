package movement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/application/movement"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (r *memUserRepo) UpdateStatus(ctx context.Context, id, status string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

type memClientRepo struct {
	clients map[string]*entity.Client
}

func (r *memClientRepo) Create(ctx context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *memClientRepo) List(ctx context.Context, scope ledger.Scope) ([]*entity.Client, error) {
	if scope.IsEmpty() {
		return nil, nil
	}
	var out []*entity.Client
	for _, c := range r.clients {
		if scope.AllowsClient(*c) {
			out = append(out, c)
		}
	}
	return out, nil
}

type memMovementRepo struct {
	movements []entity.StockMovement
}

func (r *memMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(ctx context.Context, q ledger.Query) ([]repository.MovementRow, error) {
	if q.Scope.IsEmpty() {
		return nil, nil
	}
	var visible []entity.StockMovement
	for _, m := range r.movements {
		if q.Scope.AllowsMovement(m) {
			visible = append(visible, m)
		}
	}
	top := ledger.Top(visible, q.Limit)
	rows := make([]repository.MovementRow, len(top))
	for i, m := range top {
		rows[i] = repository.MovementRow{Movement: m}
	}
	return rows, nil
}

func (r *memMovementRepo) MarkCommentRead(ctx context.Context, id string) error {
	for i := range r.movements {
		if r.movements[i].ID == id {
			r.movements[i].IsCommentRead = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newFixture() (*movement.UseCase, *memMovementRepo, *memUserRepo) {
	users := &memUserRepo{users: map[string]*entity.User{
		"admin": {ID: "admin", Name: "Ana", Role: entity.RoleAdmin, Status: entity.StatusActive},
		"farmer-c1": {
			ID: "farmer-c1", Name: "Fabien", Role: entity.RoleFarmer,
			ClientID: "c1", Status: entity.StatusActive,
		},
		"farmer-orphan": {ID: "farmer-orphan", Role: entity.RoleFarmer, Status: entity.StatusActive},
		"suspended": {
			ID: "suspended", Role: entity.RoleAdmin, Status: entity.StatusSuspended,
		},
	}}
	clients := &memClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Ferme Dupont"},
		"c2": {ID: "c2", Name: "Ferme Martin"},
	}}
	movements := &memMovementRepo{}
	return movement.NewUseCase(movements, users, clients), movements, users
}

func validRequest(clientID string) dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		ClientID:         clientID,
		Type:             entity.MovementIn,
		Product:          "Pommes de terre",
		TotalWeight:      decimal.NewFromFloat(120.5),
		PlasticBoxCount:  10,
		PlasticBoxWeight: decimal.NewFromFloat(15),
		ProductWeight:    decimal.NewFromFloat(105.5),
		Date:             "2026-08-20",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_AdminRegistraMovimiento(t *testing.T) {
	uc, repo, _ := newFixture()

	out, err := uc.Record(context.Background(), "admin", validRequest("c1"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "c1", out.ClientID)
	assert.Equal(t, "Ferme Dupont", out.ClientName)
	assert.Equal(t, "Ana", out.RecordedByName)
	assert.Equal(t, "120.5", out.TotalWeight.String())
	assert.False(t, out.IsCommentRead, "un movimiento nuevo arranca con el comentario sin leer")
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), out.Date)

	require.Len(t, repo.movements, 1)
	assert.Equal(t, "admin", repo.movements[0].RecordedBy)
}

func TestRecord_FarmerSobreSuPropioCliente(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Record(context.Background(), "farmer-c1", validRequest("c1"))
	require.NoError(t, err)
	assert.Equal(t, "c1", out.ClientID)
}

func TestRecord_FarmerSobreOtroClienteProhibido(t *testing.T) {
	uc, repo, _ := newFixture()

	_, err := uc.Record(context.Background(), "farmer-c1", validRequest("c2"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.movements, "nada debe persistirse")
}

func TestRecord_FarmerSinClienteProhibido(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Record(context.Background(), "farmer-orphan", validRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"alcance vacío: un Farmer sin afiliación no escribe sobre ningún cliente")
}

func TestRecord_CuentaSuspendidaProhibida(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Record(context.Background(), "suspended", validRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"el estado se relee del almacén; los claims del token no alcanzan")
}

// La suspensión surte efecto en la siguiente escritura aunque el token siga
// siendo válido.
func TestRecord_SuspensionPosteriorAlLogin(t *testing.T) {
	uc, _, users := newFixture()

	_, err := uc.Record(context.Background(), "admin", validRequest("c1"))
	require.NoError(t, err)

	require.NoError(t, users.UpdateStatus(context.Background(), "admin", entity.StatusSuspended))

	_, err = uc.Record(context.Background(), "admin", validRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRecord_ActorInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Record(context.Background(), "ghost", validRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRecord_ValidacionDeEntrada(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	bad := validRequest("c1")
	bad.Type = "transfer"
	_, err := uc.Record(ctx, "admin", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera de in/out")

	bad = validRequest("c1")
	bad.Product = ""
	_, err = uc.Record(ctx, "admin", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto requerido")

	bad = validRequest("c1")
	bad.TotalWeight = decimal.NewFromFloat(-1)
	_, err = uc.Record(ctx, "admin", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "peso negativo")

	bad = validRequest("c1")
	bad.WoodBoxCount = -3
	_, err = uc.Record(ctx, "admin", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "conteo de cajas negativo")

	bad = validRequest("c1")
	bad.Date = "20/08/2026"
	_, err = uc.Record(ctx, "admin", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fecha usa formato 2006-01-02")
}

// Sin fecha explícita, la fecha del movimiento es la medianoche UTC del día
// calendario UTC actual, independiente de la zona horaria del proceso.
func TestRecord_FechaPorDefectoDiaUTC(t *testing.T) {
	uc, _, _ := newFixture()
	before := time.Now().UTC()

	req := validRequest("c1")
	req.Date = ""
	out, err := uc.Record(context.Background(), "admin", req)
	require.NoError(t, err)
	after := time.Now().UTC()

	assert.Equal(t, time.UTC, out.Date.Location())
	h, m, s := out.Date.Clock()
	assert.Zero(t, h+m+s, "la fecha por defecto debe ser medianoche exacta")

	// El día es el calendario UTC en el momento del registro (dos candidatos
	// solo si el test cruza la medianoche).
	wantBefore := time.Date(before.Year(), before.Month(), before.Day(), 0, 0, 0, 0, time.UTC)
	wantAfter := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, time.UTC)
	assert.True(t, out.Date.Equal(wantBefore) || out.Date.Equal(wantAfter),
		"fecha por defecto %s fuera del día UTC esperado", out.Date)
}

func TestRecord_ClienteInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Record(context.Background(), "admin", validRequest("c9"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_LimiteDespuesDelOrden(t *testing.T) {
	uc, repo, _ := newFixture()
	for d := 1; d <= 4; d++ {
		repo.movements = append(repo.movements, entity.StockMovement{
			ID:        string(rune('a' + d)),
			ClientID:  "c1",
			Type:      entity.MovementIn,
			Date:      time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC),
		})
	}

	admin := &entity.User{ID: "admin", Role: entity.RoleAdmin}
	out, err := uc.List(context.Background(), admin, 2)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "e", out[0].ID, "el más reciente primero, el límite recorta la cola")
	assert.Equal(t, "d", out[1].ID)
}

func TestList_FarmerSinClienteCeroFilas(t *testing.T) {
	uc, repo, _ := newFixture()
	repo.movements = append(repo.movements, entity.StockMovement{ID: "m1", ClientID: "c1"})

	orphan := &entity.User{ID: "farmer-orphan", Role: entity.RoleFarmer}
	out, err := uc.List(context.Background(), orphan, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkCommentRead
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkCommentRead_SoloAdminActivo(t *testing.T) {
	uc, repo, _ := newFixture()
	repo.movements = append(repo.movements, entity.StockMovement{
		ID: "m1", ClientID: "c1", FarmerComment: "Caisses abîmées",
	})

	err := uc.MarkCommentRead(context.Background(), "farmer-c1", "m1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "un Farmer no marca comentarios")
	assert.False(t, repo.movements[0].IsCommentRead)

	err = uc.MarkCommentRead(context.Background(), "suspended", "m1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "un Admin suspendido tampoco")

	require.NoError(t, uc.MarkCommentRead(context.Background(), "admin", "m1"))
	assert.True(t, repo.movements[0].IsCommentRead)
}

func TestMarkCommentRead_MovimientoInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	err := uc.MarkCommentRead(context.Background(), "admin", "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
