package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	SolicitaCobertura bool    `json:"solicita_cobertura"`
	Nombres           string  `json:"nombres"            validate:"required,min=1"`
	Apellidos         string  `json:"apellidos"          validate:"required,min=1"`
	Sexo              string  `json:"sexo"               validate:"required,oneof=F M"`
	FechaNacimiento   string  `json:"fecha_nacimiento"   validate:"required,datetime=2006-01-02"`
	EstadoCobertura   *string `json:"estado_cobertura"`
	Social            *string `json:"social"`
	EstatusMigratorio *string `json:"estatus_migratorio"`
	TipoVivienda      *string `json:"tipo_vivienda"`
	Direccion         *string `json:"direccion"`
	Ciudad            *string `json:"ciudad"`
	Estado            *string `json:"estado"`
	CodigoPostal      *string `json:"codigo_postal"`
	Condado           *string `json:"condado"`
	CorreoElectronico *string `json:"correo_electronico" validate:"omitempty,email"`
	Phone1            string  `json:"phone_1"            validate:"required"`
	Phone2            *string `json:"phone_2"`
	OrigenVenta       *string `json:"origen_venta"`
	Referido          *string `json:"referido"`
	Base              *string `json:"base"`
	PreguntaSeguridad string  `json:"pregunta_seguridad" validate:"required"`
	// RespuestaSeguridad is hashed before it reaches the database
	RespuestaSeguridad string  `json:"respuesta_seguridad" validate:"required"`
	AsesorID           *string `json:"asesor_id"           validate:"omitempty,uuid"`
}

// ActualizarUsuarioRequest enumerates every updatable field explicitly.
// Nil means "leave unchanged"; unknown JSON keys are dropped at binding, so a
// typo can never silently mutate an arbitrary column.
type ActualizarUsuarioRequest struct {
	SolicitaCobertura *bool   `json:"solicita_cobertura"`
	Nombres           *string `json:"nombres"`
	Apellidos         *string `json:"apellidos"`
	Sexo              *string `json:"sexo"               validate:"omitempty,oneof=F M"`
	FechaNacimiento   *string `json:"fecha_nacimiento"   validate:"omitempty,datetime=2006-01-02"`
	EstadoCobertura   *string `json:"estado_cobertura"`
	Social            *string `json:"social"`
	EstatusMigratorio *string `json:"estatus_migratorio"`
	TipoVivienda      *string `json:"tipo_vivienda"`
	Direccion         *string `json:"direccion"`
	Ciudad            *string `json:"ciudad"`
	Estado            *string `json:"estado"`
	CodigoPostal      *string `json:"codigo_postal"`
	Condado           *string `json:"condado"`
	CorreoElectronico *string `json:"correo_electronico" validate:"omitempty,email"`
	Phone1            *string `json:"phone_1"`
	Phone2            *string `json:"phone_2"`
	OrigenVenta       *string `json:"origen_venta"`
	Referido          *string `json:"referido"`
	Base              *string `json:"base"`
	PreguntaSeguridad *string `json:"pregunta_seguridad"`
	// When present the new answer is rehashed; never stored in plain text
	RespuestaSeguridad *string `json:"respuesta_seguridad"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID                string  `json:"id"`
	SolicitaCobertura bool    `json:"solicita_cobertura"`
	Nombres           string  `json:"nombres"`
	Apellidos         string  `json:"apellidos"`
	Sexo              string  `json:"sexo"`
	FechaNacimiento   string  `json:"fecha_nacimiento"`
	EstadoCobertura   *string `json:"estado_cobertura"`
	Social            *string `json:"social"`
	EstatusMigratorio *string `json:"estatus_migratorio"`
	TipoVivienda      *string `json:"tipo_vivienda"`
	Direccion         *string `json:"direccion"`
	Ciudad            *string `json:"ciudad"`
	Estado            *string `json:"estado"`
	CodigoPostal      *string `json:"codigo_postal"`
	Condado           *string `json:"condado"`
	CorreoElectronico *string `json:"correo_electronico"`
	Phone1            string  `json:"phone_1"`
	Phone2            *string `json:"phone_2"`
	OrigenVenta       *string `json:"origen_venta"`
	Referido          *string `json:"referido"`
	Base              *string `json:"base"`
	PreguntaSeguridad string  `json:"pregunta_seguridad"`
	EstadoRegistro    string  `json:"estado_registro"`
	AsesorID          *string `json:"asesor_id"`
	CreatedAt         string  `json:"created_at"`
}
