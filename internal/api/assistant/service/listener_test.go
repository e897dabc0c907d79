package assistantService

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"VoiceCommerce/internal/entity"
	"VoiceCommerce/pkg/transcribe"

	"github.com/sirupsen/logrus"
)

type fakeSource struct {
	mu         sync.Mutex
	active     bool
	starts     int
	stops      int
	failStarts int

	results chan []string
	errs    chan error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		results: make(chan []string, 4),
		errs:    make(chan error, 4),
	}
}

func (f *fakeSource) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	if f.failStarts > 0 {
		f.failStarts--
		return errors.New("microphone busy")
	}
	f.active = true
	return nil
}

func (f *fakeSource) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active {
		f.stops++
	}
	f.active = false
}

func (f *fakeSource) Results() <-chan []string { return f.results }
func (f *fakeSource) Errors() <-chan error     { return f.errs }

func (f *fakeSource) counts() (starts, stops int, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts, f.stops, f.active
}

type recordingService struct {
	mu      sync.Mutex
	handled []string
	restart func()
}

func (r *recordingService) HandleTranscript(ctx context.Context, transcript string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handled = append(r.handled, transcript)
	return nil
}

func (r *recordingService) ActionLog() []entity.ActionLogEntry { return nil }

func (r *recordingService) OnRestart(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restart = fn
}

func (r *recordingService) transcripts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.handled))
	copy(out, r.handled)
	return out
}

func newTestListener(source *fakeSource, service *recordingService) *Listener {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewListener(logger, source, service,
		WithRestartDelay(time.Millisecond),
		WithRetryDelay(time.Millisecond),
	)
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestListenerHandlesBatchInOrder(t *testing.T) {
	source := newFakeSource()
	service := &recordingService{}
	listener := newTestListener(source, service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		listener.Run(ctx)
		close(done)
	}()

	source.results <- []string{"first", "second", "third"}

	waitFor(t, func() bool { return len(service.transcripts()) == 3 }, "batch not fully handled")

	got := service.transcripts()
	for i, want := range []string{"first", "second", "third"} {
		if got[i] != want {
			t.Errorf("transcripts[%d] = %q, want %q", i, got[i], want)
		}
	}

	// Listening resumed after the batch.
	waitFor(t, func() bool { _, _, active := source.counts(); return active }, "source not resumed after batch")
	_, stops, _ := source.counts()
	if stops < 1 {
		t.Error("source was not suspended while handling the batch")
	}

	cancel()
	<-done
}

func TestListenerRestartsAfterSourceError(t *testing.T) {
	source := newFakeSource()
	service := &recordingService{}
	listener := newTestListener(source, service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitFor(t, func() bool { starts, _, _ := source.counts(); return starts == 1 }, "source never started")

	source.errs <- errors.New("stream cut")

	waitFor(t, func() bool { starts, _, active := source.counts(); return starts >= 2 && active }, "source not restarted after error")
}

func TestListenerIgnoresAbortErrors(t *testing.T) {
	source := newFakeSource()
	service := &recordingService{}
	listener := newTestListener(source, service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitFor(t, func() bool { starts, _, _ := source.counts(); return starts == 1 }, "source never started")

	source.errs <- transcribe.ErrAborted

	// Give the loop a moment; an abort must not bounce the source.
	time.Sleep(20 * time.Millisecond)
	if starts, _, _ := source.counts(); starts != 1 {
		t.Errorf("starts = %d, want 1 after aborted error", starts)
	}
}

func TestListenerManualRestart(t *testing.T) {
	source := newFakeSource()
	service := &recordingService{}
	listener := newTestListener(source, service)

	if service.restart == nil {
		t.Fatal("listener did not register its restart hook")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitFor(t, func() bool { starts, _, _ := source.counts(); return starts == 1 }, "source never started")

	service.restart()

	waitFor(t, func() bool { starts, stops, active := source.counts(); return starts >= 2 && stops >= 1 && active }, "manual restart did not bounce the source")
}

func TestListenerRetriesFailedResume(t *testing.T) {
	source := newFakeSource()
	service := &recordingService{}
	listener := newTestListener(source, service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitFor(t, func() bool { starts, _, _ := source.counts(); return starts == 1 }, "source never started")

	source.mu.Lock()
	source.failStarts = 2
	source.mu.Unlock()

	source.results <- []string{"hello"}

	// Two failed resume attempts, then success.
	waitFor(t, func() bool { starts, _, active := source.counts(); return starts >= 4 && active }, "resume retries did not recover the source")
	if got := service.transcripts(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("transcripts = %v, want [hello]", got)
	}
}

func TestListenerRejectsSecondRun(t *testing.T) {
	source := newFakeSource()
	service := &recordingService{}
	listener := newTestListener(source, service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	waitFor(t, func() bool { starts, _, _ := source.counts(); return starts == 1 }, "source never started")

	if err := listener.Run(ctx); !errors.Is(err, transcribe.ErrAlreadyActive) {
		t.Errorf("second Run = %v, want ErrAlreadyActive", err)
	}
}
