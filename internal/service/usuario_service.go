package service

import (
	"context"
	"fmt"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Security answers are compared rarely and stored in bulk; a lower cost than
// staff passwords keeps intake fast.
const costRespuestaSeguridad = 10

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	ListarPendientes(ctx context.Context) ([]dto.UsuarioResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	usuarios repository.UsuarioRepository
}

func NewUsuarioService(usuarios repository.UsuarioRepository) UsuarioService {
	return &usuarioService{usuarios: usuarios}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.RespuestaSeguridad), costRespuestaSeguridad)
	if err != nil {
		return nil, fmt.Errorf("hash respuesta de seguridad: %w", err)
	}

	u := &model.Usuario{
		SolicitaCobertura:  req.SolicitaCobertura,
		Nombres:            req.Nombres,
		Apellidos:          req.Apellidos,
		Sexo:               req.Sexo,
		FechaNacimiento:    req.FechaNacimiento,
		EstadoCobertura:    req.EstadoCobertura,
		Social:             req.Social,
		EstatusMigratorio:  req.EstatusMigratorio,
		TipoVivienda:       req.TipoVivienda,
		Direccion:          req.Direccion,
		Ciudad:             req.Ciudad,
		Estado:             req.Estado,
		CodigoPostal:       req.CodigoPostal,
		Condado:            req.Condado,
		CorreoElectronico:  req.CorreoElectronico,
		Phone1:             req.Phone1,
		Phone2:             req.Phone2,
		OrigenVenta:        req.OrigenVenta,
		Referido:           req.Referido,
		Base:               req.Base,
		PreguntaSeguridad:  req.PreguntaSeguridad,
		RespuestaSeguridad: string(hash),
		EstadoRegistro:     model.RegistroPendiente,
	}

	if req.AsesorID != nil {
		asesorID, err := parseUUID(*req.AsesorID)
		if err != nil {
			return nil, fmt.Errorf("asesor_id: %w", err)
		}
		u.AsesorID = &asesorID
	}

	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, mapDBErr(err)
	}
	resp := usuarioToResponse(u)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	return usuariosToResponses(usuarios), nil
}

func (s *usuarioService) ListarPendientes(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.usuarios.ListByEstado(ctx, model.RegistroPendiente)
	if err != nil {
		return nil, err
	}
	return usuariosToResponses(usuarios), nil
}

func (s *usuarioService) Obtener(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}
	resp := usuarioToResponse(u)
	return &resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}

	if req.SolicitaCobertura != nil {
		u.SolicitaCobertura = *req.SolicitaCobertura
	}
	if req.Nombres != nil {
		u.Nombres = *req.Nombres
	}
	if req.Apellidos != nil {
		u.Apellidos = *req.Apellidos
	}
	if req.Sexo != nil {
		u.Sexo = *req.Sexo
	}
	if req.FechaNacimiento != nil {
		u.FechaNacimiento = *req.FechaNacimiento
	}
	if req.EstadoCobertura != nil {
		u.EstadoCobertura = req.EstadoCobertura
	}
	if req.Social != nil {
		u.Social = req.Social
	}
	if req.EstatusMigratorio != nil {
		u.EstatusMigratorio = req.EstatusMigratorio
	}
	if req.TipoVivienda != nil {
		u.TipoVivienda = req.TipoVivienda
	}
	if req.Direccion != nil {
		u.Direccion = req.Direccion
	}
	if req.Ciudad != nil {
		u.Ciudad = req.Ciudad
	}
	if req.Estado != nil {
		u.Estado = req.Estado
	}
	if req.CodigoPostal != nil {
		u.CodigoPostal = req.CodigoPostal
	}
	if req.Condado != nil {
		u.Condado = req.Condado
	}
	if req.CorreoElectronico != nil {
		u.CorreoElectronico = req.CorreoElectronico
	}
	if req.Phone1 != nil {
		u.Phone1 = *req.Phone1
	}
	if req.Phone2 != nil {
		u.Phone2 = req.Phone2
	}
	if req.OrigenVenta != nil {
		u.OrigenVenta = req.OrigenVenta
	}
	if req.Referido != nil {
		u.Referido = req.Referido
	}
	if req.Base != nil {
		u.Base = req.Base
	}
	if req.PreguntaSeguridad != nil {
		u.PreguntaSeguridad = *req.PreguntaSeguridad
	}
	if req.RespuestaSeguridad != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.RespuestaSeguridad), costRespuestaSeguridad)
		if err != nil {
			return nil, fmt.Errorf("hash respuesta de seguridad: %w", err)
		}
		u.RespuestaSeguridad = string(hash)
	}

	if err := s.usuarios.Update(ctx, u); err != nil {
		return nil, mapDBErr(err)
	}
	resp := usuarioToResponse(u)
	return &resp, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return mapDBErr(s.usuarios.Delete(ctx, id))
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:                u.ID.String(),
		SolicitaCobertura: u.SolicitaCobertura,
		Nombres:           u.Nombres,
		Apellidos:         u.Apellidos,
		Sexo:              u.Sexo,
		FechaNacimiento:   u.FechaNacimiento,
		EstadoCobertura:   u.EstadoCobertura,
		Social:            u.Social,
		EstatusMigratorio: u.EstatusMigratorio,
		TipoVivienda:      u.TipoVivienda,
		Direccion:         u.Direccion,
		Ciudad:            u.Ciudad,
		Estado:            u.Estado,
		CodigoPostal:      u.CodigoPostal,
		Condado:           u.Condado,
		CorreoElectronico: u.CorreoElectronico,
		Phone1:            u.Phone1,
		Phone2:            u.Phone2,
		OrigenVenta:       u.OrigenVenta,
		Referido:          u.Referido,
		Base:              u.Base,
		PreguntaSeguridad: u.PreguntaSeguridad,
		EstadoRegistro:    u.EstadoRegistro,
		AsesorID:          uuidPtrToString(u.AsesorID),
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
	}
}

func usuariosToResponses(usuarios []model.Usuario) []dto.UsuarioResponse {
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, usuarioToResponse(&usuarios[i]))
	}
	return out
}
