package assistantService

import (
	"context"
	"errors"
	"sync"
	"time"

	"VoiceCommerce/pkg/transcribe"

	"github.com/sirupsen/logrus"
)

const (
	defaultRestartDelay = time.Second
	defaultRetryDelay   = 300 * time.Millisecond
)

// Listener owns the listening session: it pauses the transcript source
// while a batch is being handled so commands never interleave, and it
// revives the source after errors or a forced restart.
type Listener struct {
	log     *logrus.Logger
	source  transcribe.Source
	service IAssistantService

	restartDelay time.Duration
	retryDelay   time.Duration

	mu      sync.Mutex
	running bool

	restartCh chan struct{}
}

type ListenerOption func(*Listener)

// WithRestartDelay overrides the pause taken after a source error before
// listening resumes.
func WithRestartDelay(d time.Duration) ListenerOption {
	return func(l *Listener) {
		l.restartDelay = d
	}
}

// WithRetryDelay overrides the backoff between failed resume attempts.
func WithRetryDelay(d time.Duration) ListenerOption {
	return func(l *Listener) {
		l.retryDelay = d
	}
}

func NewListener(log *logrus.Logger, source transcribe.Source, service IAssistantService, opts ...ListenerOption) *Listener {
	l := &Listener{
		log:          log,
		source:       source,
		service:      service,
		restartDelay: defaultRestartDelay,
		retryDelay:   defaultRetryDelay,
		restartCh:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	service.OnRestart(l.Restart)
	return l
}

// Restart schedules an immediate stop-and-resume of the source. Safe to
// call from any goroutine; coalesces when one is already pending.
func (l *Listener) Restart() {
	select {
	case l.restartCh <- struct{}{}:
	default:
	}
}

// Run drives the session until the context is cancelled. Batches are
// handled strictly in order with the source suspended, and listening
// always resumes afterwards regardless of per-command failures.
func (l *Listener) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return transcribe.ErrAlreadyActive
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.source.Stop()
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	if err := l.source.Start(); err != nil {
		return err
	}
	l.log.Info("Listening session started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case batch, ok := <-l.source.Results():
			if !ok {
				return nil
			}
			l.handleBatch(ctx, batch)

		case err, ok := <-l.source.Errors():
			if !ok {
				return nil
			}
			if errors.Is(err, transcribe.ErrAborted) {
				continue
			}
			l.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Transcript source error, restarting listening")
			l.source.Stop()
			if !l.sleep(ctx, l.restartDelay) {
				return ctx.Err()
			}
			l.resume(ctx)

		case <-l.restartCh:
			l.log.Info("Restarting listening session")
			l.source.Stop()
			l.resume(ctx)
		}
	}
}

// handleBatch suspends the source, runs every transcript in order, then
// resumes. Errors are already recorded by the service; the batch keeps
// going.
func (l *Listener) handleBatch(ctx context.Context, batch []string) {
	l.source.Stop()
	defer l.resume(ctx)

	for _, transcript := range batch {
		if ctx.Err() != nil {
			return
		}
		if err := l.service.HandleTranscript(ctx, transcript); err != nil {
			l.log.WithFields(logrus.Fields{
				"error":      err.Error(),
				"transcript": transcript,
			}).Debug("Voice command was not completed")
		}
	}
}

func (l *Listener) resume(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		err := l.source.Start()
		if err == nil || errors.Is(err, transcribe.ErrAlreadyActive) {
			return
		}
		l.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to resume listening, retrying")
		if !l.sleep(ctx, l.retryDelay) {
			return
		}
	}
}

func (l *Listener) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
