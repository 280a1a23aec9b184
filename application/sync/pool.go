package sync

import (
	"context"
	"hash/fnv"
	gosync "sync"

	"github.com/estoquehub/sync-engine/model"
)

// Handler processes one webhook delivery.
type Handler func(ctx context.Context, payload *model.WebhookPayload)

// Pool is a bounded worker pool partitioned by the webhook resource.
// Deliveries for the same resource always land on the same worker, so
// per-external-id serialization falls out of queue partitioning instead of
// ad hoc locking; different resources process concurrently.
type Pool struct {
	queues  []chan *model.WebhookPayload
	handler Handler
	wg      gosync.WaitGroup
	started bool
}

func NewPool(workers, buffer int, handler Handler) *Pool {
	if workers <= 0 {
		workers = 1
	}
	queues := make([]chan *model.WebhookPayload, workers)
	for i := range queues {
		queues[i] = make(chan *model.WebhookPayload, buffer)
	}
	return &Pool{queues: queues, handler: handler}
}

func (p *Pool) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true
	for _, q := range p.queues {
		queue := q
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for payload := range queue {
				p.handler(ctx, payload)
			}
		}()
	}
}

// Dispatch enqueues a delivery onto its resource's partition, blocking while
// that partition is full.
func (p *Pool) Dispatch(payload *model.WebhookPayload) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(payload.Resource))
	p.queues[int(h.Sum32())%len(p.queues)] <- payload
}

// Stop closes the partitions and waits for in-flight work to finish.
func (p *Pool) Stop() {
	for _, q := range p.queues {
		close(q)
	}
	p.wg.Wait()
}
