// Package reminders watches obligation due dates and hands upcoming ones to
// a notification scheduler. The worker only surfaces what is due; scheduling
// and delivering the actual push is the collaborator's job.
package reminders

import (
	"log/slog"
	"sync"
	"time"

	"property-manager/models"
)

// ObligationSource supplies obligations whose next due date falls within a
// window of days from today.
type ObligationSource interface {
	DueObligations(withinDays int) ([]models.ObligationReminder, error)
}

// Notifier receives one reminder per due obligation per scan.
type Notifier interface {
	Remind(reminder models.ObligationReminder) error
}

// LogNotifier is the default Notifier: it logs the reminder and nothing
// else.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Remind(reminder models.ObligationReminder) error {
	n.Logger.Info("obligation due",
		"obligation_id", reminder.ObligationID,
		"unit", reminder.UnitName,
		"user_id", reminder.UserID,
		"type", reminder.ObligationType,
		"payee", reminder.PayeeName,
		"amount", reminder.Amount,
		"frequency", reminder.Frequency,
		"next_due_date", reminder.NextDueDate,
	)
	return nil
}

// Worker periodically scans for due obligations in the background.
type Worker struct {
	source     ObligationSource
	notifier   Notifier
	logger     *slog.Logger
	interval   time.Duration
	windowDays int
	running    bool
	mu         sync.Mutex
	stopChan   chan struct{}
}

func NewWorker(source ObligationSource, notifier Notifier, logger *slog.Logger, interval time.Duration, windowDays int) *Worker {
	return &Worker{
		source:     source,
		notifier:   notifier,
		logger:     logger,
		interval:   interval,
		windowDays: windowDays,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the background reminder worker
func (w *Worker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("starting reminder worker", "interval", w.interval, "window_days", w.windowDays)

	go w.run()
}

// Stop gracefully stops the background reminder worker
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	w.logger.Info("stopping reminder worker")
	close(w.stopChan)
	w.running = false
}

func (w *Worker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Scan immediately on start
	w.Scan()

	for {
		select {
		case <-ticker.C:
			w.Scan()
		case <-w.stopChan:
			return
		}
	}
}

// Scan performs one pass over due obligations. A failed read is logged and
// skipped; the next tick retries.
func (w *Worker) Scan() int {
	due, err := w.source.DueObligations(w.windowDays)
	if err != nil {
		w.logger.Error("reminder scan failed", "error", err)
		return 0
	}

	notified := 0
	for _, reminder := range due {
		if err := w.notifier.Remind(reminder); err != nil {
			w.logger.Error("reminder delivery failed",
				"obligation_id", reminder.ObligationID, "error", err)
			continue
		}
		notified++
	}

	return notified
}
