package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Job queue keys. Jobs are JSON blobs on a Redis list, pushed with LPUSH and
// consumed with BRPOP so multiple instances can share the queue.
const (
	ColaJobs = "crm:jobs"
	ColaDLQ  = "crm:jobs:dlq"

	maxIntentos = 3
	brpopEspera = 5 * time.Second
)

type Job struct {
	ID       string          `json:"id"`
	Tipo     string          `json:"tipo"`
	Payload  json.RawMessage `json:"payload"`
	Intentos int             `json:"intentos"`
}

// Dispatcher enqueues background jobs.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

func (d *Dispatcher) Encolar(ctx context.Context, tipo string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(Job{ID: uuid.NewString(), Tipo: tipo, Payload: body})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, ColaJobs, raw).Err()
}

// Handler processes one job; a non-nil error triggers a retry.
type Handler func(ctx context.Context, job Job) error

// Pool consumes the job queue with a fixed number of workers.
type Pool struct {
	rdb      *redis.Client
	handlers map[string]Handler
	size     int
	wg       sync.WaitGroup
}

func NewPool(rdb *redis.Client, size int) *Pool {
	return &Pool{rdb: rdb, handlers: make(map[string]Handler), size: size}
}

func (p *Pool) Register(tipo string, h Handler) {
	p.handlers[tipo] = h
}

// Start launches the workers. They stop when ctx is cancelled; Wait blocks
// until all of them have drained their current job.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go func(n int) {
			defer p.wg.Done()
			p.correr(ctx, n)
		}(i)
	}
}

func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) correr(ctx context.Context, n int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.rdb.BRPop(ctx, brpopEspera, ColaJobs).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Int("worker", n).Msg("brpop fallo")
			time.Sleep(time.Second)
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			log.Error().Err(err).Msg("job ilegible, descartado a DLQ")
			p.aDLQ(ctx, Job{Payload: json.RawMessage(res[1])}, "json invalido")
			continue
		}
		p.procesar(ctx, job)
	}
}

func (p *Pool) procesar(ctx context.Context, job Job) {
	h, ok := p.handlers[job.Tipo]
	if !ok {
		p.aDLQ(ctx, job, "tipo de job desconocido")
		return
	}

	if err := h(ctx, job); err != nil {
		job.Intentos++
		if job.Intentos >= maxIntentos {
			log.Error().Err(err).Str("job", job.ID).Str("tipo", job.Tipo).Msg("job agoto reintentos")
			p.aDLQ(ctx, job, err.Error())
			return
		}
		log.Warn().Err(err).Str("job", job.ID).Int("intento", job.Intentos).Msg("job fallo, reencolado")
		raw, merr := json.Marshal(job)
		if merr != nil {
			p.aDLQ(ctx, job, merr.Error())
			return
		}
		if perr := p.rdb.LPush(ctx, ColaJobs, raw).Err(); perr != nil {
			log.Error().Err(perr).Str("job", job.ID).Msg("no se pudo reencolar")
		}
	}
}
