// Package user contiene los casos de uso administrativos sobre perfiles.
package user

import (
	"context"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/repository"
)

// UseCase casos de uso de usuarios (solo Admin los invoca; el router lo
// garantiza con RequireRole).
type UseCase struct {
	userRepo repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository) *UseCase {
	return &UseCase{userRepo: userRepo}
}

// List lista perfiles con paginación.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Name:      u.Name,
			Email:     u.Email,
			Role:      string(u.Role),
			Status:    u.Status,
			ClientID:  u.ClientID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return out, nil
}

// UpdateStatus suspende o reactiva una cuenta. La suspensión corta las
// escrituras del usuario en el siguiente acceso (los casos de uso de
// escritura releen el perfil).
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if status != entity.StatusActive && status != entity.StatusSuspended {
		return domain.ErrInvalidInput
	}
	// El gateway ya reporta ErrUserNotFound con cero filas afectadas;
	// un pre-chequeo solo agregaría una carrera.
	return uc.userRepo.UpdateStatus(ctx, id, status)
}
