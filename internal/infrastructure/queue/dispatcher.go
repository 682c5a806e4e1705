package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/storemgmt/store-api/internal/api/metrics"
	"github.com/storemgmt/store-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes restock alerts to a fixed set of workers using consistent
// hashing on the product ID, so alerts for one product are processed in order.
type Dispatcher struct {
	workers []chan ports.RestockAlertInput
	service ports.RestockService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.RestockService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RestockAlertInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RestockAlertInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an alert to the worker responsible for its product.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(alert ports.RestockAlertInput) {
	idx := d.shardIndex(alert.ProductID)
	d.workers[idx] <- alert
	metrics.RestockAlertsTotal.Inc()
	metrics.RestockQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a product ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RestockAlertInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-ch:
			if !ok {
				return
			}
			metrics.RestockQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, alert); err != nil {
				d.log.Error().Err(err).
					Str("product_id", alert.ProductID).
					Int("worker_id", id).
					Msg("restock alert processing failed")
			}
		}
	}
}
