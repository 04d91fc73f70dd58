package service

import (
	"context"
	"fmt"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/config"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const costPasswordPersonal = 12

// Token types carried in the "tipo" claim. The auth middleware only accepts
// access tokens; refresh tokens are good for /refresh alone.
const (
	TokenAcceso  = "access"
	TokenRefresh = "refresh"
)

// Claims is the JWT payload for staff tokens.
type Claims struct {
	Rol    string `json:"rol"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Tipo   string `json:"tipo"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo de firma inesperado: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.ErrUnauthorized
	}
	return claims, nil
}

type PersonalService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)
	Crear(ctx context.Context, req dto.CrearPersonalRequest) (*dto.PersonalResponse, error)
	Listar(ctx context.Context) ([]dto.PersonalResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PersonalResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPersonalRequest) (*dto.PersonalResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type personalService struct {
	personal   repository.PersonalRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewPersonalService(personal repository.PersonalRepository, cfg *config.Config) PersonalService {
	return &personalService{
		personal:   personal,
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  time.Duration(cfg.JWTExpirationHours) * time.Hour,
		refreshTTL: time.Duration(cfg.JWTRefreshHours) * time.Hour,
	}
}

func (s *personalService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := s.personal.FindByEmailActivo(ctx, req.Email)
	if err != nil {
		// Same answer for unknown email and bad password
		return nil, fmt.Errorf("credenciales invalidas: %w", apierror.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("credenciales invalidas: %w", apierror.ErrUnauthorized)
	}
	return s.emitirTokens(p)
}

func (s *personalService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := ParseToken(s.secret, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Tipo != TokenRefresh {
		return nil, apierror.ErrUnauthorized
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apierror.ErrUnauthorized
	}
	p, err := s.personal.FindByID(ctx, id)
	if err != nil || !p.Activo {
		return nil, apierror.ErrUnauthorized
	}
	return s.emitirTokens(p)
}

func (s *personalService) emitirTokens(p *model.Personal) (*dto.LoginResponse, error) {
	access, err := s.firmarToken(p, TokenAcceso, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.firmarToken(p, TokenRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.accessTTL.Seconds()),
		Personal:     personalToResponse(p),
	}, nil
}

func (s *personalService) firmarToken(p *model.Personal, tipo string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Rol:    p.Rol,
		Nombre: p.Nombre + " " + p.Apellido,
		Email:  p.Email,
		Tipo:   tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *personalService) Crear(ctx context.Context, req dto.CrearPersonalRequest) (*dto.PersonalResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), costPasswordPersonal)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	p := &model.Personal{
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		MetaMensual:  req.MetaMensual,
		Activo:       true,
	}
	if err := s.personal.Create(ctx, p); err != nil {
		return nil, mapDBErr(err)
	}
	resp := personalToResponse(p)
	return &resp, nil
}

func (s *personalService) Listar(ctx context.Context) ([]dto.PersonalResponse, error) {
	personal, err := s.personal.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonalResponse, 0, len(personal))
	for i := range personal {
		out = append(out, personalToResponse(&personal[i]))
	}
	return out, nil
}

func (s *personalService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PersonalResponse, error) {
	p, err := s.personal.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}
	resp := personalToResponse(p)
	return &resp, nil
}

func (s *personalService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPersonalRequest) (*dto.PersonalResponse, error) {
	p, err := s.personal.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		p.Apellido = *req.Apellido
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), costPasswordPersonal)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		p.PasswordHash = string(hash)
	}
	if req.Rol != nil {
		p.Rol = *req.Rol
	}
	if req.MetaMensual != nil {
		p.MetaMensual = *req.MetaMensual
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.personal.Update(ctx, p); err != nil {
		return nil, mapDBErr(err)
	}
	resp := personalToResponse(p)
	return &resp, nil
}

func (s *personalService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return mapDBErr(s.personal.Delete(ctx, id))
}

func personalToResponse(p *model.Personal) dto.PersonalResponse {
	return dto.PersonalResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Apellido:    p.Apellido,
		Email:       p.Email,
		Rol:         p.Rol,
		MetaMensual: p.MetaMensual,
		Activo:      p.Activo,
	}
}
