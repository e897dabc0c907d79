package transcribe

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// LineSource turns a line-oriented reader (typically stdin) into a
// transcript source. Each non-empty line is one lowercase transcript.
// Lines arriving while the source is suspended are buffered and delivered
// as a single batch on resume. Only the deliver loop ever sends on or
// closes the results channel, so a resume after end of input is harmless.
type LineSource struct {
	reader  io.Reader
	results chan []string
	errs    chan error
	notify  chan struct{}

	mu      sync.Mutex
	active  bool
	started bool
	done    bool
	pending []string
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{
		reader:  r,
		results: make(chan []string, 8),
		errs:    make(chan error, 1),
		notify:  make(chan struct{}, 1),
	}
}

func (s *LineSource) Start() error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return ErrAlreadyActive
	}
	s.active = true
	first := !s.started
	s.started = true
	s.mu.Unlock()

	if first {
		go s.readLoop()
		go s.deliverLoop()
	}
	s.signal()
	return nil
}

func (s *LineSource) Stop() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func (s *LineSource) Results() <-chan []string {
	return s.results
}

func (s *LineSource) Errors() <-chan error {
	return s.errs
}

func (s *LineSource) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *LineSource) readLoop() {
	scanner := bufio.NewScanner(s.reader)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}

		s.mu.Lock()
		s.pending = append(s.pending, line)
		s.mu.Unlock()
		s.signal()
	}

	if err := scanner.Err(); err != nil {
		s.errs <- err
	}

	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
	s.signal()
}

// deliverLoop is the sole sender on results. Buffered lines are held back
// while the source is suspended, except at end of input where the final
// batch is flushed before the channel closes.
func (s *LineSource) deliverLoop() {
	for range s.notify {
		s.mu.Lock()
		if !s.active && !s.done {
			s.mu.Unlock()
			continue
		}
		batch := s.pending
		s.pending = nil
		done := s.done
		s.mu.Unlock()

		if len(batch) > 0 {
			s.results <- batch
		}
		if done {
			close(s.results)
			return
		}
	}
}
