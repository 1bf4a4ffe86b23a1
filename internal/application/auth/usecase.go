package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tu-usuario/creators-api/internal/application/dto"
	"github.com/tu-usuario/creators-api/internal/domain"
	"github.com/tu-usuario/creators-api/internal/domain/entity"
	"github.com/tu-usuario/creators-api/internal/domain/repository"
	"github.com/tu-usuario/creators-api/pkg/hasher"
	"github.com/tu-usuario/creators-api/pkg/jwt"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthUseCase casos de uso de autenticación: registro y login.
// No guarda estado propio entre requests; todo vive en el repositorio.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher *hasher.Hasher
	tokens *jwt.Issuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, h *hasher.Hasher, tokens *jwt.Issuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: h, tokens: tokens}
}

// Register crea un usuario: normaliza el email, verifica unicidad,
// hashea el password y persiste. Devuelve domain.ErrEmailAlreadyExists
// si el email ya existe, sea en el chequeo previo o porque el constraint
// único del store saltó en el INSERT (bajo registros concurrentes el
// store es el árbitro final).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	if err := validateRegister(in.Name, email, in.Password, in.Role); err != nil {
		return nil, err
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleInfluencer
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite el bearer token JWT.
// "Cuenta inexistente" y "password incorrecto" devuelven el mismo
// domain.ErrInvalidCredentials para no filtrar qué emails existen.
// El registro no se muta en login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrValidation)
	}

	user, err := uc.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := uc.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegister(name, email, password, role string) error {
	if name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if !emailRx.MatchString(email) {
		return fmt.Errorf("%w: email con formato inválido", domain.ErrValidation)
	}
	if role != "" && !entity.ValidRole(role) {
		return fmt.Errorf("%w: role debe ser influencer, business o admin", domain.ErrValidation)
	}
	return validatePassword(password)
}

// validatePassword aplica la política de passwords: 8 a 100 caracteres,
// al menos una minúscula, una mayúscula, un dígito y un carácter especial.
func validatePassword(password string) error {
	// Se cuentan caracteres, no bytes: "ñ" ocupa 2 bytes pero es 1 carácter.
	if utf8.RuneCountInString(password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrValidation)
	}
	if utf8.RuneCountInString(password) > 100 {
		return fmt.Errorf("%w: password debe tener 100 caracteres o menos", domain.ErrValidation)
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !lower:
		return fmt.Errorf("%w: password debe contener al menos una minúscula", domain.ErrValidation)
	case !upper:
		return fmt.Errorf("%w: password debe contener al menos una mayúscula", domain.ErrValidation)
	case !digit:
		return fmt.Errorf("%w: password debe contener al menos un número", domain.ErrValidation)
	case !special:
		return fmt.Errorf("%w: password debe contener al menos un carácter especial", domain.ErrValidation)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
