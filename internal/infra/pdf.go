package infra

import (
	"fmt"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerarPDFAuditoria renders the audit case file (recording, client, family,
// incomes, plan and payment) as a one-document PDF at ruta.
func GenerarPDFAuditoria(d *dto.AuditoriaDetalleResponse, ruta string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	titulo := func(s string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, tr(s), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	linea := func(etiqueta, valor string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 6, tr(etiqueta), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(valor), "", 1, "L", false, 0, "")
	}
	opcional := func(s *string) string {
		if s == nil {
			return "-"
		}
		return *s
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr("Expediente de auditoría"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	titulo("Grabación")
	linea("Fecha:", d.Grabacion.FechaGrabacion)
	linea("Estado:", d.Grabacion.EstadoAuditoria)
	linea("Etiquetas:", opcional(d.Grabacion.Etiquetas))
	linea("Observaciones:", opcional(d.Grabacion.ObservacionesAuditor))
	pdf.Ln(3)

	titulo("Cliente")
	linea("Nombre:", d.Cliente.Nombres+" "+d.Cliente.Apellidos)
	linea("Fecha de nacimiento:", d.Cliente.FechaNacimiento)
	linea("Teléfono:", d.Cliente.Phone1)
	linea("Correo:", opcional(d.Cliente.CorreoElectronico))
	linea("Estado de registro:", d.Cliente.EstadoRegistro)
	pdf.Ln(3)

	if d.Conyuge != nil {
		titulo("Cónyuge")
		linea("Nombre:", d.Conyuge.Nombres+" "+d.Conyuge.Apellidos)
		linea("Fecha de nacimiento:", d.Conyuge.FechaNacimiento)
		pdf.Ln(3)
	}

	if len(d.Dependientes) > 0 {
		titulo("Dependientes")
		for _, dep := range d.Dependientes {
			linea(dep.Parentesco+":", dep.Nombres+" "+dep.Apellidos)
		}
		pdf.Ln(3)
	}

	titulo("Ingresos")
	if d.Ingresos.Usuario != nil {
		linea("Titular (anual):", "$"+d.Ingresos.Usuario.IngresosAnuales.StringFixed(2))
	} else {
		linea("Titular (anual):", "-")
	}
	for i, ing := range d.Ingresos.Dependientes {
		linea(fmt.Sprintf("Dependiente %d (anual):", i+1), "$"+ing.IngresosAnuales.StringFixed(2))
	}
	pdf.Ln(3)

	if len(d.PlanesSalud) > 0 {
		titulo("Plan de salud")
		for _, p := range d.PlanesSalud {
			linea("Aseguradora:", p.Aseguradora)
			linea("Plan:", p.NombrePlan+" ("+p.TipoPlan+")")
			linea("Prima mensual:", "$"+p.ValorPrima.StringFixed(2))
		}
		pdf.Ln(3)
	}

	if d.InformacionPago != nil {
		titulo("Información de pago")
		linea("Tarjeta:", "**** "+d.InformacionPago.Ultimos4DigitosTarjeta)
		linea("Expira:", fmt.Sprintf("%02d/%d", d.InformacionPago.FechaExpiracionMes, d.InformacionPago.FechaExpiracionAno))
	}

	return pdf.OutputFileAndClose(ruta)
}
