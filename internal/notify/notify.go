// Package notify carries transaction notifications from payment services
// to whoever observes them: the console, the logs, or an in-memory recorder.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification is the observable record of a single completed charge.
type Notification struct {
	TransactionID string // Generated per charge
	Provider      string // e.g. "paypal", "stripe", "qiwi"
	Amount        int64  // Exactly the amount that was charged
	Message       string // Human-readable line in the provider's own wording
}

// New builds a Notification with a fresh transaction ID.
func New(provider string, amount int64, message string) Notification {
	return Notification{
		TransactionID: uuid.NewString(),
		Provider:      provider,
		Amount:        amount,
		Message:       message,
	}
}

// Sink receives notifications.
type Sink interface {
	Notify(n Notification)
}

// ConsoleSink writes each notification's message as one line to an io.Writer
// and logs it as a structured event.
type ConsoleSink struct {
	out    io.Writer
	logger *zap.Logger
}

// NewConsoleSink creates a ConsoleSink. A nil logger disables structured logging.
func NewConsoleSink(out io.Writer, logger *zap.Logger) *ConsoleSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleSink{out: out, logger: logger}
}

// Notify implements Sink.
func (s *ConsoleSink) Notify(n Notification) {
	fmt.Fprintln(s.out, n.Message)
	s.logger.Info("transaction notification",
		zap.String("transaction_id", n.TransactionID),
		zap.String("provider", n.Provider),
		zap.Int64("amount", n.Amount),
	)
}

// Recorder keeps every notification in memory. It is safe for concurrent use.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements Sink.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// Notifications returns a copy of everything recorded so far, in arrival order.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Fanout delivers each notification to every sink in order.
type Fanout []Sink

// Notify implements Sink.
func (f Fanout) Notify(n Notification) {
	for _, s := range f {
		if s != nil {
			s.Notify(n)
		}
	}
}
