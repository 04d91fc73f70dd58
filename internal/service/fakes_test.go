package service

// In-memory repository fakes backing the service tests. They mirror the
// storage contracts: not-found surfaces as gorm.ErrRecordNotFound and unique
// violations as gorm.ErrDuplicatedKey, exactly like the GORM impls with
// TranslateError enabled. Tx variants ignore the *gorm.DB; DB() returns nil
// so runTx executes the workflow body directly.

import (
	"context"
	"strings"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Usuario ──────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existente := range r.usuarios {
		if u.CorreoElectronico != nil && existente.CorreoElectronico != nil &&
			*u.CorreoElectronico == *existente.CorreoElectronico {
			return gorm.ErrDuplicatedKey
		}
		if u.Social != nil && existente.Social != nil && *u.Social == *existente.Social {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) ListByEstado(_ context.Context, estado string) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.EstadoRegistro == estado {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.EstadoRegistro = estado
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.usuarios[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.usuarios, id)
	return nil
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

// ── Dependiente ──────────────────────────────────────────────────────────────

type fakeDependienteRepo struct {
	deps map[uuid.UUID]*model.Dependiente
}

func newFakeDependienteRepo() *fakeDependienteRepo {
	return &fakeDependienteRepo{deps: make(map[uuid.UUID]*model.Dependiente)}
}

func (r *fakeDependienteRepo) Create(_ context.Context, d *model.Dependiente) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.deps[d.ID] = d
	return nil
}

func (r *fakeDependienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Dependiente, error) {
	d, ok := r.deps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeDependienteRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Dependiente, error) {
	var out []model.Dependiente
	for _, d := range r.deps {
		if d.UsuarioID == usuarioID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDependienteRepo) ListByUsuarioYParentesco(_ context.Context, usuarioID uuid.UUID, parentesco string) ([]model.Dependiente, error) {
	var out []model.Dependiente
	for _, d := range r.deps {
		if d.UsuarioID == usuarioID && d.Parentesco == parentesco {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDependienteRepo) ListByUsuarioSinConyuge(_ context.Context, usuarioID uuid.UUID) ([]model.Dependiente, error) {
	var out []model.Dependiente
	for _, d := range r.deps {
		if d.UsuarioID == usuarioID && d.Parentesco != model.ParentescoConyuge {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDependienteRepo) Update(_ context.Context, d *model.Dependiente) error {
	if _, ok := r.deps[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.deps[d.ID] = d
	return nil
}

func (r *fakeDependienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.deps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.deps, id)
	return nil
}

var _ repository.DependienteRepository = (*fakeDependienteRepo)(nil)

// ── Ingreso ──────────────────────────────────────────────────────────────────

type fakeIngresoRepo struct {
	ingresos map[uuid.UUID]*model.Ingreso
}

func newFakeIngresoRepo() *fakeIngresoRepo {
	return &fakeIngresoRepo{ingresos: make(map[uuid.UUID]*model.Ingreso)}
}

func (r *fakeIngresoRepo) Create(_ context.Context, i *model.Ingreso) error {
	for _, existente := range r.ingresos {
		if existente.TipoEntidad == i.TipoEntidad && existente.EntidadID == i.EntidadID {
			return gorm.ErrDuplicatedKey
		}
	}
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.ingresos[i.ID] = i
	return nil
}

func (r *fakeIngresoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ingreso, error) {
	i, ok := r.ingresos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *fakeIngresoRepo) ListByEntidad(_ context.Context, tipoEntidad string, entidadID uuid.UUID) ([]model.Ingreso, error) {
	var out []model.Ingreso
	for _, i := range r.ingresos {
		if i.TipoEntidad == tipoEntidad && i.EntidadID == entidadID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *fakeIngresoRepo) ListByEntidadIDs(_ context.Context, ids []uuid.UUID) ([]model.Ingreso, error) {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	var out []model.Ingreso
	for _, i := range r.ingresos {
		if _, ok := set[i.EntidadID]; ok {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *fakeIngresoRepo) Update(_ context.Context, i *model.Ingreso) error {
	if _, ok := r.ingresos[i.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.ingresos[i.ID] = i
	return nil
}

func (r *fakeIngresoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.ingresos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.ingresos, id)
	return nil
}

var _ repository.IngresoRepository = (*fakeIngresoRepo)(nil)

// ── PlanSalud ────────────────────────────────────────────────────────────────

type fakePlanSaludRepo struct {
	planes map[uuid.UUID]*model.PlanSalud
}

func newFakePlanSaludRepo() *fakePlanSaludRepo {
	return &fakePlanSaludRepo{planes: make(map[uuid.UUID]*model.PlanSalud)}
}

func (r *fakePlanSaludRepo) Create(_ context.Context, p *model.PlanSalud) error {
	for _, existente := range r.planes {
		if existente.UsuarioID == p.UsuarioID {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.planes[p.ID] = p
	return nil
}

func (r *fakePlanSaludRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PlanSalud, error) {
	p, ok := r.planes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePlanSaludRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.PlanSalud, error) {
	for _, p := range r.planes {
		if p.UsuarioID == usuarioID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePlanSaludRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.PlanSalud, error) {
	var out []model.PlanSalud
	for _, p := range r.planes {
		if p.UsuarioID == usuarioID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanSaludRepo) Update(_ context.Context, p *model.PlanSalud) error {
	if _, ok := r.planes[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.planes[p.ID] = p
	return nil
}

func (r *fakePlanSaludRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.planes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.planes, id)
	return nil
}

var _ repository.PlanSaludRepository = (*fakePlanSaludRepo)(nil)

// ── InformacionPago ──────────────────────────────────────────────────────────

type fakeInformacionPagoRepo struct {
	pagos map[uuid.UUID]*model.InformacionPago
}

func newFakeInformacionPagoRepo() *fakeInformacionPagoRepo {
	return &fakeInformacionPagoRepo{pagos: make(map[uuid.UUID]*model.InformacionPago)}
}

func (r *fakeInformacionPagoRepo) Create(_ context.Context, p *model.InformacionPago) error {
	for _, existente := range r.pagos {
		if existente.UsuarioID == p.UsuarioID {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos[p.ID] = p
	return nil
}

func (r *fakeInformacionPagoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InformacionPago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeInformacionPagoRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.InformacionPago, error) {
	for _, p := range r.pagos {
		if p.UsuarioID == usuarioID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInformacionPagoRepo) Update(_ context.Context, p *model.InformacionPago) error {
	if _, ok := r.pagos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.pagos[p.ID] = p
	return nil
}

func (r *fakeInformacionPagoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.pagos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.pagos, id)
	return nil
}

var _ repository.InformacionPagoRepository = (*fakeInformacionPagoRepo)(nil)

// ── Evidencia ────────────────────────────────────────────────────────────────

type fakeEvidenciaRepo struct {
	evidencias map[uuid.UUID]*model.Evidencia
	failCreate bool // simulates a transaction failure mid-batch
}

func newFakeEvidenciaRepo() *fakeEvidenciaRepo {
	return &fakeEvidenciaRepo{evidencias: make(map[uuid.UUID]*model.Evidencia)}
}

func (r *fakeEvidenciaRepo) DB() *gorm.DB { return nil }

func (r *fakeEvidenciaRepo) CreateTx(_ *gorm.DB, e *model.Evidencia) error {
	if r.failCreate {
		return gorm.ErrInvalidTransaction
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	r.evidencias[e.ID] = e
	return nil
}

func (r *fakeEvidenciaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Evidencia, error) {
	e, ok := r.evidencias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEvidenciaRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Evidencia, error) {
	var out []model.Evidencia
	for _, e := range r.evidencias {
		if e.UsuarioID == usuarioID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEvidenciaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	if _, ok := r.evidencias[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.evidencias, id)
	return nil
}

var _ repository.EvidenciaRepository = (*fakeEvidenciaRepo)(nil)

// ── Personal ─────────────────────────────────────────────────────────────────

type fakePersonalRepo struct {
	personal map[uuid.UUID]*model.Personal
}

func newFakePersonalRepo() *fakePersonalRepo {
	return &fakePersonalRepo{personal: make(map[uuid.UUID]*model.Personal)}
}

func (r *fakePersonalRepo) Create(_ context.Context, p *model.Personal) error {
	for _, existente := range r.personal {
		if strings.EqualFold(existente.Email, p.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.personal[p.ID] = p
	return nil
}

func (r *fakePersonalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Personal, error) {
	p, ok := r.personal[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePersonalRepo) FindByEmailActivo(_ context.Context, email string) (*model.Personal, error) {
	for _, p := range r.personal {
		if strings.EqualFold(p.Email, email) && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePersonalRepo) List(_ context.Context) ([]model.Personal, error) {
	out := make([]model.Personal, 0, len(r.personal))
	for _, p := range r.personal {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePersonalRepo) Update(_ context.Context, p *model.Personal) error {
	if _, ok := r.personal[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.personal[p.ID] = p
	return nil
}

func (r *fakePersonalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.personal[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.personal, id)
	return nil
}

var _ repository.PersonalRepository = (*fakePersonalRepo)(nil)

// ── Grabacion ────────────────────────────────────────────────────────────────

type fakeGrabacionRepo struct {
	grabaciones map[uuid.UUID]*model.Grabacion
}

func newFakeGrabacionRepo() *fakeGrabacionRepo {
	return &fakeGrabacionRepo{grabaciones: make(map[uuid.UUID]*model.Grabacion)}
}

func (r *fakeGrabacionRepo) DB() *gorm.DB { return nil }

func (r *fakeGrabacionRepo) Create(_ context.Context, g *model.Grabacion) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.EstadoAuditoria == "" {
		g.EstadoAuditoria = model.AuditoriaPendiente
	}
	r.grabaciones[g.ID] = g
	return nil
}

func (r *fakeGrabacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Grabacion, error) {
	g, ok := r.grabaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGrabacionRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Grabacion, error) {
	var out []model.Grabacion
	for _, g := range r.grabaciones {
		if g.IDUsuario == usuarioID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGrabacionRepo) listItems(estado string) []dto.AuditoriaListItem {
	var out []dto.AuditoriaListItem
	for _, g := range r.grabaciones {
		if g.EstadoAuditoria == estado {
			out = append(out, dto.AuditoriaListItem{
				IDGrabacion:     g.ID.String(),
				IDUsuario:       g.IDUsuario.String(),
				EstadoAuditoria: g.EstadoAuditoria,
				FechaGrabacion:  g.FechaGrabacion.Format(time.RFC3339),
			})
		}
	}
	return out
}

func (r *fakeGrabacionRepo) ListPendientes(_ context.Context) ([]dto.AuditoriaListItem, error) {
	return r.listItems(model.AuditoriaPendiente), nil
}

func (r *fakeGrabacionRepo) ListRechazadas(_ context.Context) ([]dto.AuditoriaListItem, error) {
	return r.listItems(model.AuditoriaRechazado), nil
}

func (r *fakeGrabacionRepo) ListRechazadasPorAgente(_ context.Context, agenteID uuid.UUID) ([]dto.AuditoriaListItem, error) {
	var out []dto.AuditoriaListItem
	for _, g := range r.grabaciones {
		if g.EstadoAuditoria == model.AuditoriaRechazado && g.IDAgente == agenteID {
			out = append(out, dto.AuditoriaListItem{
				IDGrabacion:     g.ID.String(),
				IDUsuario:       g.IDUsuario.String(),
				EstadoAuditoria: g.EstadoAuditoria,
			})
		}
	}
	return out, nil
}

func (r *fakeGrabacionRepo) FindUltimaRechazadaPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Grabacion, error) {
	var ultima *model.Grabacion
	for _, g := range r.grabaciones {
		if g.IDUsuario != usuarioID || g.EstadoAuditoria != model.AuditoriaRechazado {
			continue
		}
		if ultima == nil || posterior(g, ultima) {
			ultima = g
		}
	}
	if ultima == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return ultima, nil
}

// posterior orders by fecha_auditoria, breaking ties by created_at.
func posterior(a, b *model.Grabacion) bool {
	fa, fb := time.Time{}, time.Time{}
	if a.FechaAuditoria != nil {
		fa = *a.FechaAuditoria
	}
	if b.FechaAuditoria != nil {
		fb = *b.FechaAuditoria
	}
	if !fa.Equal(fb) {
		return fa.After(fb)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (r *fakeGrabacionRepo) ActualizarAuditoriaTx(_ *gorm.DB, id uuid.UUID, estado string, observaciones *string, auditorID *uuid.UUID, fecha time.Time) error {
	g, ok := r.grabaciones[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.EstadoAuditoria = estado
	g.ObservacionesAuditor = observaciones
	g.IDAuditor = auditorID
	g.FechaAuditoria = &fecha
	return nil
}

func (r *fakeGrabacionRepo) ReiniciarAuditoriaTx(_ *gorm.DB, id uuid.UUID) error {
	g, ok := r.grabaciones[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.EstadoAuditoria = model.AuditoriaPendiente
	g.ObservacionesAuditor = nil
	g.IDAuditor = nil
	g.FechaAuditoria = nil
	return nil
}

var _ repository.GrabacionRepository = (*fakeGrabacionRepo)(nil)

// ── Job queue ────────────────────────────────────────────────────────────────

type jobEncolado struct {
	Tipo    string
	Payload interface{}
}

type fakeEnqueuer struct {
	jobs []jobEncolado
	fail error
}

func (e *fakeEnqueuer) Encolar(_ context.Context, tipo string, payload interface{}) error {
	if e.fail != nil {
		return e.fail
	}
	e.jobs = append(e.jobs, jobEncolado{Tipo: tipo, Payload: payload})
	return nil
}

var _ JobEnqueuer = (*fakeEnqueuer)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedUsuario(r *fakeUsuarioRepo) *model.Usuario {
	u := &model.Usuario{
		ID:                uuid.New(),
		Nombres:           "Maria",
		Apellidos:         "Lopez",
		Sexo:              "F",
		FechaNacimiento:   "1988-04-12",
		Phone1:            "3015550101",
		PreguntaSeguridad: "Ciudad de nacimiento",
		RespuestaSeguridad: "$2a$10$abcdefghijklmnopqrstuv",
		EstadoRegistro:    model.RegistroPendienteAuditoria,
		CreatedAt:         time.Now(),
	}
	r.usuarios[u.ID] = u
	return u
}

func seedAgente(r *fakePersonalRepo) *model.Personal {
	p := &model.Personal{
		ID:           uuid.New(),
		Nombre:       "Carlos",
		Apellido:     "Mendez",
		Email:        "carlos.mendez@crm-obama.com",
		PasswordHash: "$2a$12$abcdefghijklmnopqrstuv",
		Rol:          model.RolAgente,
		MetaMensual:  40,
		Activo:       true,
	}
	r.personal[p.ID] = p
	return p
}

func seedGrabacion(r *fakeGrabacionRepo, usuarioID, agenteID uuid.UUID, estado string) *model.Grabacion {
	g := &model.Grabacion{
		ID:              uuid.New(),
		IDUsuario:       usuarioID,
		IDAgente:        agenteID,
		FechaGrabacion:  time.Now().Add(-time.Hour),
		EstadoAuditoria: estado,
		CreatedAt:       time.Now().Add(-time.Hour),
	}
	r.grabaciones[g.ID] = g
	return g
}
