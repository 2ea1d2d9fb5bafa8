// Package client contiene los casos de uso sobre clientes del depósito.
package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase casos de uso de clientes.
type UseCase struct {
	clientRepo repository.ClientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(clientRepo repository.ClientRepository) *UseCase {
	return &UseCase{clientRepo: clientRepo}
}

// Create persiste un nuevo cliente. Nombre y datos de contacto no pueden
// estar vacíos (invariante del modelo).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" || in.Address == "" || in.Email == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	// Medianoche UTC del día calendario UTC actual: la fecha de alta se
	// almacena como DATE y no debe depender de la zona horaria del proceso.
	today := time.Now().UTC()
	joinDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if in.JoinDate != "" {
		var err error
		joinDate, err = time.Parse(dateLayout, in.JoinDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		JoinDate:  joinDate,
		Type:      in.Type,
		Phone:     in.Phone,
		Address:   in.Address,
		Email:     in.Email,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// List devuelve los clientes visibles bajo el alcance dado.
func (uc *UseCase) List(ctx context.Context, scope ledger.Scope) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Get devuelve un cliente si el alcance lo permite. Un cliente fuera del
// alcance responde igual que uno inexistente: prohibido colapsa a no
// encontrado para no revelar qué IDs existen.
func (uc *UseCase) Get(ctx context.Context, scope ledger.Scope, id string) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !scope.AllowsClient(*c) {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		JoinDate:  c.JoinDate,
		Type:      c.Type,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
