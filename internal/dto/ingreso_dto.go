package dto

import "github.com/shopspring/decimal"

type CrearIngresoRequest struct {
	TipoEntidad       string          `json:"tipo_entidad"       validate:"required,oneof=Usuario Dependiente"`
	EntidadID         string          `json:"entidad_id"         validate:"required,uuid"`
	TipoDeclaracion   string          `json:"tipo_declaracion"   validate:"required"`
	IngresosSemanales decimal.Decimal `json:"ingresos_semanales" validate:"required,min=0"`
}

// ActualizarIngresoRequest never accepts ingresos_anuales; the annual figure
// is always recomputed from the weekly one.
type ActualizarIngresoRequest struct {
	TipoDeclaracion   string          `json:"tipo_declaracion"   validate:"required"`
	IngresosSemanales decimal.Decimal `json:"ingresos_semanales" validate:"required,min=0"`
}

type IngresoResponse struct {
	ID                string          `json:"id"`
	TipoEntidad       string          `json:"tipo_entidad"`
	EntidadID         string          `json:"entidad_id"`
	TipoDeclaracion   string          `json:"tipo_declaracion"`
	IngresosSemanales decimal.Decimal `json:"ingresos_semanales"`
	IngresosAnuales   decimal.Decimal `json:"ingresos_anuales"`
}

// IngresosPorTitular feeds the audit case file: the user's own declaration vs
// every dependent's, split by the tipo_entidad discriminator.
type IngresosPorTitular struct {
	Usuario      *IngresoResponse  `json:"usuario"`
	Dependientes []IngresoResponse `json:"dependientes"`
}
