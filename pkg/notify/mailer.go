package notify

import (
	"context"
	"time"

	"bus-booking/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Message is a queued outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier enqueues emails without blocking the caller. Delivery failures
// are logged, never surfaced to the request path.
type Notifier interface {
	Enqueue(msg Message)
}

type Mailer struct {
	cfg     utils.EmailConfig
	retries int
	queue   chan Message
	done    chan struct{}
	log     *zap.Logger
}

func NewMailer(cfg utils.EmailConfig, retries int, log *zap.Logger) *Mailer {
	if retries < 1 {
		retries = 1
	}
	m := &Mailer{
		cfg:     cfg,
		retries: retries,
		queue:   make(chan Message, 256),
		done:    make(chan struct{}),
		log:     log.With(zap.String("component", "mailer")),
	}
	go m.worker()
	return m
}

// Enqueue drops the message when the queue is full rather than blocking a
// request handler.
func (m *Mailer) Enqueue(msg Message) {
	select {
	case m.queue <- msg:
	default:
		m.log.Warn("Notification queue full, dropping message",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}

// Close stops the worker after draining the queue.
func (m *Mailer) Close() {
	close(m.queue)
	<-m.done
}

func (m *Mailer) worker() {
	defer close(m.done)
	for msg := range m.queue {
		m.deliver(msg)
	}
}

func (m *Mailer) deliver(msg Message) {
	var lastErr error
	for attempt := 1; attempt <= m.retries; attempt++ {
		if lastErr = m.send(msg); lastErr == nil {
			m.log.Info("Notification sent",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
			)
			return
		}
		m.log.Warn("Notification delivery failed",
			zap.Error(lastErr),
			zap.String("to", msg.To),
			zap.Int("attempt", attempt),
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	m.log.Error("Notification dropped after retries",
		zap.Error(lastErr),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
}

func (m *Mailer) send(msg Message) error {
	email := mail.NewMsg()
	if err := email.From(m.cfg.From); err != nil {
		return err
	}
	if err := email.To(msg.To); err != nil {
		return err
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return client.DialAndSendWithContext(ctx, email)
}
