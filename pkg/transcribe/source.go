package transcribe

import (
	"errors"
)

var (
	// ErrAborted marks a benign cancellation of the capture session; the
	// listening controller ignores it instead of scheduling a restart.
	ErrAborted = errors.New("transcription aborted")

	ErrAlreadyActive = errors.New("transcription session already active")
)

// Source is a continuous producer of lowercase transcripts. Results arrive
// in delivery-order batches; the capture layer may hand over several
// transcripts at once. Stop suspends capture without tearing the source
// down; a later Start resumes it and flushes anything buffered meanwhile.
type Source interface {
	Start() error
	Stop()
	Results() <-chan []string
	Errors() <-chan error
}
