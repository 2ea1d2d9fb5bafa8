package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appclient "github.com/agristock/depot-api/internal/application/client"
	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de prueba en memoria
// ──────────────────────────────────────────────────────────────────────────────

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

func newFixture() (*appclient.UseCase, *memClientRepo) {
	repo := &memClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Ferme Dupont"},
		"c2": {ID: "c2", Name: "Ferme Martin"},
	}}
	return appclient.NewUseCase(repo), repo
}

func validRequest() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:     "Ferme Lefèvre",
		JoinDate: "2026-01-15",
		Type:     "producteur",
		Phone:    "+33 6 00 00 00 00",
		Address:  "12 route des Champs",
		Email:    "contact@lefevre.fr",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ClienteValido(t *testing.T) {
	uc, repo := newFixture()

	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ferme Lefèvre", out.Name)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), out.JoinDate)
	assert.Contains(t, repo.clients, out.ID)
}

func TestCreate_DatosDeContactoRequeridos(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	for _, tc := range []struct {
		campo  string
		mutate func(*dto.CreateClientRequest)
	}{
		{"name", func(r *dto.CreateClientRequest) { r.Name = "" }},
		{"type", func(r *dto.CreateClientRequest) { r.Type = "" }},
		{"phone", func(r *dto.CreateClientRequest) { r.Phone = "" }},
		{"address", func(r *dto.CreateClientRequest) { r.Address = "" }},
		{"email", func(r *dto.CreateClientRequest) { r.Email = "" }},
	} {
		req := validRequest()
		tc.mutate(&req)
		_, err := uc.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "campo vacío: %s", tc.campo)
	}
}

func TestCreate_FechaMalFormada(t *testing.T) {
	uc, _ := newFixture()

	req := validRequest()
	req.JoinDate = "15/01/2026"
	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Get bajo alcance
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PorAlcance(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	all, err := uc.List(ctx, ledger.ScopeAll())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := uc.List(ctx, ledger.ScopeClient("c1"))
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "c1", scoped[0].ID)

	none, err := uc.List(ctx, ledger.ScopeNone())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGet_DentroDelAlcance(t *testing.T) {
	uc, _ := newFixture()

	out, err := uc.Get(context.Background(), ledger.ScopeClient("c1"), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ferme Dupont", out.Name)
}

// Un cliente fuera del alcance responde igual que uno inexistente: prohibido
// colapsa a no encontrado para no revelar qué IDs existen.
func TestGet_FueraDelAlcanceColapsaANoEncontrado(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Get(ctx, ledger.ScopeClient("c1"), "c2")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un Farmer afiliado a c1 no debe distinguir c2 de un ID inexistente")

	_, err = uc.Get(ctx, ledger.ScopeClient("c1"), "c9")
	assert.ErrorIs(t, err, domain.ErrNotFound, "misma respuesta para un ID inexistente")

	_, err = uc.Get(ctx, ledger.ScopeNone(), "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "alcance vacío: nada es visible")
}
