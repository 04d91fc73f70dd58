package dto

type GuardarInformacionPagoRequest struct {
	UsuarioID              string `json:"usuario_id"                validate:"required,uuid"`
	Ultimos4DigitosTarjeta string `json:"ultimos_4_digitos_tarjeta" validate:"required,len=4,numeric"`
	TokenPago              string `json:"token_pago"                validate:"required"`
	FechaExpiracionMes     int    `json:"fecha_expiracion_mes"      validate:"required,min=1,max=12"`
	FechaExpiracionAno     int    `json:"fecha_expiracion_ano"      validate:"required"`
}

type ActualizarInformacionPagoRequest struct {
	Ultimos4DigitosTarjeta string `json:"ultimos_4_digitos_tarjeta" validate:"required,len=4,numeric"`
	TokenPago              string `json:"token_pago"                validate:"required"`
	FechaExpiracionMes     int    `json:"fecha_expiracion_mes"      validate:"required,min=1,max=12"`
	FechaExpiracionAno     int    `json:"fecha_expiracion_ano"      validate:"required"`
}

// InformacionPagoResponse deliberately omits the payment token.
type InformacionPagoResponse struct {
	ID                     string `json:"id"`
	UsuarioID              string `json:"usuario_id"`
	Ultimos4DigitosTarjeta string `json:"ultimos_4_digitos_tarjeta"`
	FechaExpiracionMes     int    `json:"fecha_expiracion_mes"`
	FechaExpiracionAno     int    `json:"fecha_expiracion_ano"`
}
