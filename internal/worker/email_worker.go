package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/davidzaratecamp/crm-backend-obama/internal/infra"
)

// JobEmailRechazo notifies an agent that one of their recordings was rejected
// by an auditor.
const JobEmailRechazo = "email_rechazo"

type EmailRechazoPayload struct {
	AgenteEmail   string `json:"agente_email"`
	AgenteNombre  string `json:"agente_nombre"`
	ClienteNombre string `json:"cliente_nombre"`
	Observaciones string `json:"observaciones"`
}

func NewEmailRechazoHandler(mailer *infra.Mailer) Handler {
	return func(ctx context.Context, job Job) error {
		var p EmailRechazoPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return fmt.Errorf("payload email_rechazo: %w", err)
		}

		asunto := fmt.Sprintf("Auditoria rechazada - %s", p.ClienteNombre)
		cuerpo := fmt.Sprintf(
			"Hola %s,\n\nLa grabacion del cliente %s fue rechazada en auditoria.\n\nObservaciones del auditor:\n%s\n\nPor favor corrige el registro y reenvialo a auditoria.\n",
			p.AgenteNombre, p.ClienteNombre, p.Observaciones,
		)
		return mailer.Send(p.AgenteEmail, asunto, cuerpo, "")
	}
}
