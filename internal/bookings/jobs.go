package bookings

import (
	"context"
	"log"
	"time"
)

// JobProcessor runs the stale-hold reaper in the background. The sweep is
// a liveness measure, not a correctness one: overlap checks already treat
// expired holds as non-existent, but without the reaper abandoned rows
// would accumulate unboundedly.
type JobProcessor struct {
	service Service
	config  *JobConfig
	done    chan struct{}
}

// JobConfig contains configuration for background jobs
type JobConfig struct {
	ReapInterval time.Duration
}

// DefaultJobConfig returns default job configuration
func DefaultJobConfig() *JobConfig {
	return &JobConfig{
		ReapInterval: 1 * time.Minute,
	}
}

// NewJobProcessor creates a new job processor
func NewJobProcessor(service Service, config *JobConfig) *JobProcessor {
	if config == nil {
		config = DefaultJobConfig()
	}

	return &JobProcessor{
		service: service,
		config:  config,
		done:    make(chan struct{}),
	}
}

// Start starts the background reaper
func (jp *JobProcessor) Start(ctx context.Context) {
	log.Println("Starting booking background jobs...")
	go jp.startReaper(ctx)
}

// Stop stops the background reaper
func (jp *JobProcessor) Stop() {
	log.Println("Stopping booking background jobs...")
	close(jp.done)
}

func (jp *JobProcessor) startReaper(ctx context.Context) {
	ticker := time.NewTicker(jp.config.ReapInterval)
	defer ticker.Stop()

	log.Printf("Started stale-hold reaper with %v interval", jp.config.ReapInterval)

	for {
		select {
		case <-ticker.C:
			jp.reapStaleHolds(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jp *JobProcessor) reapStaleHolds(ctx context.Context) {
	reaped, err := jp.service.ReapStaleHolds(ctx)
	if err != nil {
		log.Printf("Error reaping stale holds: %v", err)
		return
	}
	if reaped > 0 {
		log.Printf("Reaped %d stale holds", reaped)
	}
}
