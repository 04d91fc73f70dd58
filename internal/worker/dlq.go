package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// JobFallido is the envelope stored on the dead-letter queue.
type JobFallido struct {
	Job       Job       `json:"job"`
	Motivo    string    `json:"motivo"`
	FallidoEn time.Time `json:"fallido_en"`
}

func (p *Pool) aDLQ(ctx context.Context, job Job, motivo string) {
	raw, err := json.Marshal(JobFallido{Job: job, Motivo: motivo, FallidoEn: time.Now()})
	if err != nil {
		log.Error().Err(err).Str("job", job.ID).Msg("no se pudo serializar para DLQ")
		return
	}
	if err := p.rdb.LPush(ctx, ColaDLQ, raw).Err(); err != nil {
		log.Error().Err(err).Str("job", job.ID).Msg("no se pudo mover a DLQ")
	}
}

// ListarDLQ devuelve los jobs muertos sin consumirlos, para inspeccion manual.
func ListarDLQ(ctx context.Context, rdb *redis.Client, limite int64) ([]JobFallido, error) {
	raws, err := rdb.LRange(ctx, ColaDLQ, 0, limite-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]JobFallido, 0, len(raws))
	for _, r := range raws {
		var jf JobFallido
		if err := json.Unmarshal([]byte(r), &jf); err != nil {
			continue
		}
		out = append(out, jf)
	}
	return out, nil
}
