package transcribe

import (
	"context"
	"os"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperSource transcribes audio files pushed on a channel and emits the
// lowercase transcripts. Used when driving the assistant from recorded
// audio instead of typed lines. Like LineSource, only the deliver loop
// sends on or closes the results channel.
type WhisperSource struct {
	client  *openai.Client
	files   <-chan string
	results chan []string
	errs    chan error
	notify  chan struct{}

	mu      sync.Mutex
	active  bool
	started bool
	done    bool
	pending []string
}

func NewWhisperSource(files <-chan string) *WhisperSource {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &WhisperSource{
		client:  openai.NewClient(apiKey),
		files:   files,
		results: make(chan []string, 8),
		errs:    make(chan error, 1),
		notify:  make(chan struct{}, 1),
	}
}

func (s *WhisperSource) Start() error {
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
		go s.transcribeLoop()
		go s.deliverLoop()
	}
	s.signal()
	return nil
}

func (s *WhisperSource) Stop() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func (s *WhisperSource) Results() <-chan []string {
	return s.results
}

func (s *WhisperSource) Errors() <-chan error {
	return s.errs
}

func (s *WhisperSource) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *WhisperSource) transcribeLoop() {
	for filePath := range s.files {
		req := openai.AudioRequest{
			Model:    openai.Whisper1,
			FilePath: filePath,
		}

		resp, err := s.client.CreateTranscription(context.Background(), req)
		if err != nil {
			select {
			case s.errs <- err:
			default:
			}
			continue
		}

		transcript := strings.ToLower(strings.TrimSpace(resp.Text))
		if transcript == "" {
			continue
		}

		s.mu.Lock()
		s.pending = append(s.pending, transcript)
		s.mu.Unlock()
		s.signal()
	}

	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
	s.signal()
}

func (s *WhisperSource) deliverLoop() {
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
