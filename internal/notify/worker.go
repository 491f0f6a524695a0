package notify

import (
	"context"
	"log"
	"time"
)

// Worker drains the notification queue, one job per tick.
type Worker struct {
	queue  Queue
	sender Sender
}

func NewWorker(queue Queue, sender Sender) *Worker {
	return &Worker{queue: queue, sender: sender}
}

// ProcessOne picks ONE queued notification and delivers it. Delivery
// failures are recorded on the row and never stop the worker.
func (w *Worker) ProcessOne(ctx context.Context) error {
	job, err := w.queue.FetchPending(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	if err := w.sender.Send(ctx, job.Event); err != nil {
		log.Printf("notification %d failed: %v", job.NotificationID, err)
		_ = w.queue.MarkFailed(ctx, job.NotificationID, err.Error())
		return nil
	}

	log.Printf("notification %d sent for event %d", job.NotificationID, job.Event.ID)
	return w.queue.MarkSent(ctx, job.NotificationID)
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.ProcessOne(ctx); err != nil {
				log.Printf("notify worker error: %v", err)
			}
		}
	}
}
