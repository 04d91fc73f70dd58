package dto

type CrearDependienteRequest struct {
	Parentesco        string  `json:"parentesco"         validate:"required"`
	SolicitaCobertura bool    `json:"solicita_cobertura"`
	Nombres           string  `json:"nombres"            validate:"required,min=1"`
	Apellidos         string  `json:"apellidos"          validate:"required,min=1"`
	Sexo              string  `json:"sexo"               validate:"required,oneof=F M"`
	FechaNacimiento   string  `json:"fecha_nacimiento"   validate:"required,datetime=2006-01-02"`
	Social            *string `json:"social"`
	EstatusMigratorio *string `json:"estatus_migratorio"`
	MedicareMedicaid  *string `json:"medicare_medicaid"`
	Estado            *string `json:"estado"`
	Condado           *string `json:"condado"`
	Ciudad            *string `json:"ciudad"`
}

type ActualizarDependienteRequest struct {
	Parentesco        *string `json:"parentesco"`
	SolicitaCobertura *bool   `json:"solicita_cobertura"`
	Nombres           *string `json:"nombres"`
	Apellidos         *string `json:"apellidos"`
	Sexo              *string `json:"sexo"             validate:"omitempty,oneof=F M"`
	FechaNacimiento   *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Social            *string `json:"social"`
	EstatusMigratorio *string `json:"estatus_migratorio"`
	MedicareMedicaid  *string `json:"medicare_medicaid"`
	Estado            *string `json:"estado"`
	Condado           *string `json:"condado"`
	Ciudad            *string `json:"ciudad"`
}

type DependienteResponse struct {
	ID                string  `json:"id"`
	UsuarioID         string  `json:"usuario_id"`
	Parentesco        string  `json:"parentesco"`
	SolicitaCobertura bool    `json:"solicita_cobertura"`
	Nombres           string  `json:"nombres"`
	Apellidos         string  `json:"apellidos"`
	Sexo              string  `json:"sexo"`
	FechaNacimiento   string  `json:"fecha_nacimiento"`
	Social            *string `json:"social"`
	EstatusMigratorio *string `json:"estatus_migratorio"`
	MedicareMedicaid  *string `json:"medicare_medicaid"`
	Estado            *string `json:"estado"`
	Condado           *string `json:"condado"`
	Ciudad            *string `json:"ciudad"`
}
