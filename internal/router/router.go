package router

import (
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/config"
	"github.com/davidzaratecamp/crm-backend-obama/internal/handler"
	"github.com/davidzaratecamp/crm-backend-obama/internal/middleware"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"
	"github.com/davidzaratecamp/crm-backend-obama/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	dependienteRepo := repository.NewDependienteRepository(db)
	ingresoRepo := repository.NewIngresoRepository(db)
	planSaludRepo := repository.NewPlanSaludRepository(db)
	pagoRepo := repository.NewInformacionPagoRepository(db)
	evidenciaRepo := repository.NewEvidenciaRepository(db)
	personalRepo := repository.NewPersonalRepository(db)
	grabacionRepo := repository.NewGrabacionRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	dependienteSvc := service.NewDependienteService(dependienteRepo, usuarioRepo)
	ingresoSvc := service.NewIngresoService(ingresoRepo, usuarioRepo, dependienteRepo)
	planSaludSvc := service.NewPlanSaludService(planSaludRepo, usuarioRepo)
	pagoSvc := service.NewInformacionPagoService(pagoRepo, usuarioRepo)
	evidenciaSvc := service.NewEvidenciaService(evidenciaRepo, usuarioRepo, cfg.UploadStoragePath)
	personalSvc := service.NewPersonalService(personalRepo, cfg)
	reporteSvc := service.NewReporteService(reporteRepo, personalRepo, rdb)
	auditoriaSvc := service.NewAuditoriaService(service.AuditoriaDeps{
		Grabaciones:  grabacionRepo,
		Usuarios:     usuarioRepo,
		Dependientes: dependienteRepo,
		Ingresos:     ingresoRepo,
		Planes:       planSaludRepo,
		Pagos:        pagoRepo,
		Personal:     personalRepo,
		Jobs:         dispatcher,
		PDFDir:       cfg.PDFStoragePath,
	})

	// ── Handlers ─────────────────────────────────────────────────────────────
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	dependientesH := handler.NewDependientesHandler(dependienteSvc)
	ingresosH := handler.NewIngresosHandler(ingresoSvc)
	planesH := handler.NewPlanesSaludHandler(planSaludSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	evidenciasH := handler.NewEvidenciasHandler(evidenciaSvc)
	personalH := handler.NewPersonalHandler(personalSvc)
	authH := handler.NewAuthHandler(personalSvc)
	auditoriasH := handler.NewAuditoriasHandler(auditoriaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Static files: evidence documents and call recordings
	r.Static("/uploads", cfg.UploadStoragePath)
	r.Static("/audios", cfg.AudioStoragePath)

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/_auth/personal")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Enrollment intake. The capture frontend drives these without a staff
	// session, exactly like the legacy API.
	usuarios := api.Group("/usuarios")
	{
		usuarios.POST("", usuariosH.Crear)
		usuarios.GET("", usuariosH.Listar)
		usuarios.GET("/pendientes", usuariosH.Pendientes)
		usuarios.GET("/ventasPorAsesor/:fechaInicio/:fechaFin", reportesH.VentasPorAsesor)
		usuarios.GET("/:id", usuariosH.Obtener)
		usuarios.PUT("/:id", usuariosH.Actualizar)
		usuarios.DELETE("/:id", usuariosH.Eliminar)

		usuarios.POST("/:id/dependientes", dependientesH.Crear)
		usuarios.GET("/:id/dependientes", dependientesH.ListarPorUsuario)
		usuarios.GET("/:id/dependientes/sin-conyuge", dependientesH.SinConyuge)

		usuarios.POST("/:id/evidencias", evidenciasH.Subir)
		usuarios.GET("/:id/evidencias", evidenciasH.ListarPorUsuario)
	}

	dependientes := api.Group("/dependientes")
	{
		dependientes.GET("/usuario/:id/parentesco/:parentesco", dependientesH.PorParentesco)
		dependientes.GET("/:id", dependientesH.Obtener)
		dependientes.PUT("/:id", dependientesH.Actualizar)
		dependientes.DELETE("/:id", dependientesH.Eliminar)
	}

	ingresos := api.Group("/ingresos")
	{
		ingresos.POST("", ingresosH.Crear)
		ingresos.GET("/entidad/:tipoEntidad/:entidadId", ingresosH.PorEntidad)
		ingresos.GET("/usuario/:usuarioId/completo", ingresosH.CompletoPorUsuario)
		ingresos.PUT("/:id", ingresosH.Actualizar)
		ingresos.DELETE("/:id", ingresosH.Eliminar)
	}

	planes := api.Group("/planes_salud")
	{
		planes.POST("", planesH.Guardar)
		planes.GET("/usuario/:usuarioId", planesH.PorUsuario)
		planes.GET("/:id", planesH.Obtener)
		planes.PUT("/:id", planesH.Actualizar)
		planes.DELETE("/:id", planesH.Eliminar)
	}

	pagos := api.Group("/pagos")
	{
		pagos.POST("", pagosH.Guardar)
		pagos.GET("/usuario/:usuarioId", pagosH.PorUsuario)
		pagos.PUT("/:id", pagosH.Actualizar)
		pagos.DELETE("/:id", pagosH.Eliminar)
	}

	api.DELETE("/evidencias/:id", evidenciasH.Eliminar)

	api.GET("/reportes/contador", reportesH.Contador)

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	// Audit workbench: auditors (admins can cover for them)
	auditor := api.Group("/_auditor", jwtMW, middleware.RequireRole(model.RolAuditor, model.RolAdministrador))
	{
		auditor.GET("/audits/pending", auditoriasH.Pendientes)
		auditor.GET("/audits/rejected", auditoriasH.Rechazadas)
		auditor.GET("/audits/:idGrabacion", auditoriasH.Detalle)
		auditor.PUT("/audits/:idGrabacion", auditoriasH.ActualizarEstado)
		auditor.GET("/audits/:idGrabacion/pdf", auditoriasH.PDF)
		auditor.PUT("/audits/resubmit/usuario/:id_usuario", auditoriasH.Reenviar)
	}

	// Staff administration
	admin := api.Group("/_admin", jwtMW, middleware.RequireRole(model.RolAdministrador))
	{
		admin.POST("/personal", personalH.Crear)
		admin.GET("/personal", personalH.Listar)
		admin.GET("/personal/:id", personalH.Obtener)
		admin.PUT("/personal/:id", personalH.Actualizar)
		admin.DELETE("/personal/:id", personalH.Eliminar)

		admin.GET("/:id/auditorias-rechazadas", auditoriasH.RechazadasPorAgente)
	}

	// Agent dashboard
	asesor := api.Group("/_asesor", jwtMW, middleware.RequireRole(model.RolAgente, model.RolAdministrador))
	{
		asesor.GET("/dashboard/:asesorId/ventas-del-mes", reportesH.VentasDelMes)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
