package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"gin-jobs/internal/mailer"
)

const (
	// MaxRetries is the maximum number of automatic delivery retries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// Processor delivers queued email jobs through a Mailer.
type Processor struct {
	queue        *MemoryQueue
	mailer       mailer.Mailer
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new email delivery processor.
func NewProcessor(queue *MemoryQueue, m mailer.Mailer, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		mailer:      m,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Mail processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Mail processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Mail worker %d shutting down", id)
				return
			}
			continue
		}
		p.deliver(ctx, job)
	}
}

func (p *Processor) deliver(ctx context.Context, job EmailJob) {
	if err := p.mailer.Send(ctx, job.To, job.Subject, job.Body); err != nil {
		log.Printf("Mail delivery to %s failed: %v", job.To, err)
		p.handleFailure(job)
		return
	}
	log.Printf("Mail delivered to %s", job.To)
}

func (p *Processor) handleFailure(job EmailJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		log.Printf("Max retries reached for mail to %s, dropping", job.To)
		return
	}

	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))

	// Schedule retry with delay. Uses shutdownCh instead of ctx so an
	// in-flight retry is abandoned cleanly during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay, dropping mail to %s", job.To)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue mail to %s: %v", job.To, err)
			}
		}
	}()
}
