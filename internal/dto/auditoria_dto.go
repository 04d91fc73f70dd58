package dto

// ─── Listings ────────────────────────────────────────────────────────────────

// AuditoriaListItem is a joined row: grabacion + client + agent names.
// Scanned directly from the repository join.
type AuditoriaListItem struct {
	IDGrabacion          string  `json:"id_grabacion"          gorm:"column:id_grabacion"`
	IDUsuario            string  `json:"id_usuario"            gorm:"column:id_usuario"`
	Etiquetas            *string `json:"etiquetas"             gorm:"column:etiquetas"`
	FechaGrabacion       string  `json:"fecha_grabacion"       gorm:"column:fecha_grabacion"`
	EstadoAuditoria      string  `json:"estado_auditoria"      gorm:"column:estado_auditoria"`
	ObservacionesAuditor *string `json:"observaciones_auditor,omitempty" gorm:"column:observaciones_auditor"`
	NombreCliente        string  `json:"nombre_cliente"        gorm:"column:nombre_cliente"`
	ApellidoCliente      string  `json:"apellido_cliente"      gorm:"column:apellido_cliente"`
	NombreAgente         string  `json:"nombre_agente"         gorm:"column:nombre_agente"`
	ApellidoAgente       string  `json:"apellido_agente"       gorm:"column:apellido_agente"`
}

// ─── Review ──────────────────────────────────────────────────────────────────

type ActualizarAuditoriaRequest struct {
	EstadoAuditoria      string  `json:"estado_auditoria"      validate:"required"`
	ObservacionesAuditor *string `json:"observaciones_auditor"`
	IDAuditor            *string `json:"id_auditor"            validate:"omitempty,uuid"`
}

// ─── Case file ───────────────────────────────────────────────────────────────

type GrabacionResponse struct {
	ID                   string  `json:"id"`
	IDUsuario            string  `json:"id_usuario"`
	IDAgente             string  `json:"id_agente"`
	Etiquetas            *string `json:"etiquetas"`
	RutaAudio            *string `json:"ruta_audio"`
	FechaGrabacion       string  `json:"fecha_grabacion"`
	EstadoAuditoria      string  `json:"estado_auditoria"`
	ObservacionesAuditor *string `json:"observaciones_auditor"`
	IDAuditor            *string `json:"id_auditor"`
	FechaAuditoria       *string `json:"fecha_auditoria"`
}

// AuditoriaDetalleResponse is the full case file an auditor reviews: the
// recording, the client, the spouse separated from the other dependents, the
// income partition, the selected plans and the payment info (nil if absent).
type AuditoriaDetalleResponse struct {
	Grabacion       GrabacionResponse        `json:"grabacion"`
	Cliente         UsuarioResponse          `json:"cliente"`
	Conyuge         *DependienteResponse     `json:"conyuge"`
	Dependientes    []DependienteResponse    `json:"dependientes"`
	Ingresos        IngresosPorTitular       `json:"ingresos"`
	PlanesSalud     []PlanSaludResponse      `json:"planes_salud"`
	InformacionPago *InformacionPagoResponse `json:"informacion_pago"`
}
