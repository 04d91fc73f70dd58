package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	ExpiresIn    int              `json:"expires_in"`
	Personal     PersonalResponse `json:"personal"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Personal CRUD ───────────────────────────────────────────────────────────

type CrearPersonalRequest struct {
	Nombre      string `json:"nombre"       validate:"required,min=1"`
	Apellido    string `json:"apellido"     validate:"required,min=1"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=4"`
	Rol         string `json:"rol"          validate:"required,oneof=Administrador Agente Auditor"`
	MetaMensual int    `json:"meta_mensual" validate:"min=0"`
}

type ActualizarPersonalRequest struct {
	Nombre      *string `json:"nombre"`
	Apellido    *string `json:"apellido"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Password    *string `json:"password"     validate:"omitempty,min=4"`
	Rol         *string `json:"rol"          validate:"omitempty,oneof=Administrador Agente Auditor"`
	MetaMensual *int    `json:"meta_mensual" validate:"omitempty,min=0"`
	Activo      *bool   `json:"activo"`
}

type PersonalResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Email       string `json:"email"`
	Rol         string `json:"rol"`
	MetaMensual int    `json:"meta_mensual"`
	Activo      bool   `json:"activo"`
}
