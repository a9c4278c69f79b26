package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/essence-api/internal/application/dto"
	"github.com/jhoicas/essence-api/internal/domain"
	"github.com/jhoicas/essence-api/internal/domain/entity"
	"github.com/jhoicas/essence-api/internal/domain/repository"
	"github.com/jhoicas/essence-api/pkg/jwt"
)

// bcryptCost factor de trabajo fijo para los hashes de password.
const bcryptCost = 12

// dummyHash hash bcrypt válido contra el que se compara cuando el email no
// existe: el login desconocido cuesta lo mismo que uno real y el tiempo de
// respuesta no delata si el usuario está registrado.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase casos de uso de autenticación: login, autorización de admin y
// aprovisionamiento fuera de banda.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y emite el token de sesión.
// Email desconocido y password incorrecto colapsan en ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{Token: token, User: *toUserResponse(user)}, nil
}

// Authorize es el predicado de autorización único para todos los endpoints de
// mutación: valida el token, carga el usuario y exige el flag de admin.
//   - token ausente, inválido o expirado -> ErrUnauthorized
//   - usuario inexistente o no admin     -> ErrForbidden
func (uc *AuthUseCase) Authorize(token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// ProvisionAdmin crea un usuario administrador (rutina fuera de banda usada
// por cmd/seed_admin). Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) ProvisionAdmin(email, password string) (*dto.UserResponse, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}
