package dto

import "github.com/shopspring/decimal"

// GuardarPlanSaludRequest feeds the upsert: the presence of an existing row
// for usuario_id decides insert (201) vs update (200).
type GuardarPlanSaludRequest struct {
	UsuarioID        string           `json:"usuario_id"          validate:"required,uuid"`
	Aseguradora      string           `json:"aseguradora"         validate:"required"`
	NombrePlan       string           `json:"nombre_plan"         validate:"required"`
	TipoPlan         string           `json:"tipo_plan"           validate:"required"`
	Deducible        *decimal.Decimal `json:"deducible"           validate:"omitempty,min=0"`
	GastoMaxBolsillo *decimal.Decimal `json:"gasto_max_bolsillo"  validate:"omitempty,min=0"`
	ValorPrima       decimal.Decimal  `json:"valor_prima"         validate:"required,min=0"`
}

type ActualizarPlanSaludRequest struct {
	Aseguradora      string           `json:"aseguradora"         validate:"required"`
	NombrePlan       string           `json:"nombre_plan"         validate:"required"`
	TipoPlan         string           `json:"tipo_plan"           validate:"required"`
	Deducible        *decimal.Decimal `json:"deducible"           validate:"omitempty,min=0"`
	GastoMaxBolsillo *decimal.Decimal `json:"gasto_max_bolsillo"  validate:"omitempty,min=0"`
	ValorPrima       decimal.Decimal  `json:"valor_prima"         validate:"required,min=0"`
}

type PlanSaludResponse struct {
	ID               string           `json:"id"`
	UsuarioID        string           `json:"usuario_id"`
	Aseguradora      string           `json:"aseguradora"`
	NombrePlan       string           `json:"nombre_plan"`
	TipoPlan         string           `json:"tipo_plan"`
	Deducible        *decimal.Decimal `json:"deducible"`
	GastoMaxBolsillo *decimal.Decimal `json:"gasto_max_bolsillo"`
	ValorPrima       decimal.Decimal  `json:"valor_prima"`
}

// GuardarResult distinguishes insert from update so the handler can answer
// 201 vs 200.
type GuardarResult struct {
	ID      string
	Created bool
}
