package dto

type ContadorResponse struct {
	Total int64 `json:"total"`
}

type VentasPorAsesorItem struct {
	AsesorID    string `json:"asesor_id"    gorm:"column:asesor_id"`
	Nombre      string `json:"nombre"       gorm:"column:nombre"`
	Apellido    string `json:"apellido"     gorm:"column:apellido"`
	TotalVentas int64  `json:"total_ventas" gorm:"column:total_ventas"`
}

type ResumenAgenteResponse struct {
	VentasActuales int64 `json:"ventas_actuales"`
	MetaMensual    int   `json:"meta_mensual"`
}
