package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/repository"
	"github.com/agristock/depot-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y
// perfil actual. Publica transiciones de sesión en Events.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	clientRepo repository.ClientRepository
	jwtCfg     JWTConfig
	events     chan SessionEvent
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, clientRepo repository.ClientRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		clientRepo: clientRepo,
		jwtCfg:     jwtCfg,
		events:     make(chan SessionEvent, sessionEventBuffer),
	}
}

// EnsureBootstrapAdmin siembra la cuenta Admin inicial desde configuración.
// El registro es solo-Admin, así que un almacén recién creado necesita este
// camino para la primera cuenta. Idempotente: si el email ya existe no hace
// nada; con credenciales vacías tampoco.
func (uc *AuthUseCase) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.userRepo.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Register crea identidad y perfil: valida el rol, exige cliente afiliado
// existente para Farmer, hashea el password con bcrypt y persiste.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleFarmer && in.ClientID == "" {
		return nil, domain.ErrInvalidInput // un Farmer sin cliente afiliado no vería nada
	}
	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Username
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.StatusActive,
		ClientID:     in.ClientID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, rechaza cuentas suspendidas, genera el JWT
// con rol y cliente afiliado, y publica session-established.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), user.ClientID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.publish(SessionEstablished, user.ID)
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout publica session-ended. Los tokens HS256 no se revocan en el
// servidor; la transición existe para que el controlador superior reaccione.
func (uc *AuthUseCase) Logout(userID string) {
	uc.publish(SessionEnded, userID)
}

// CurrentUser devuelve el perfil del usuario autenticado (getCurrentUser).
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    u.Status,
		ClientID:  u.ClientID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
