package transcribe

import (
	"testing"
	"time"
)

func TestWhisperSourceResumeAfterInputClosed(t *testing.T) {
	files := make(chan string)
	source := NewWhisperSource(files)

	if err := source.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}
	source.Stop()

	// A transcript buffered during suspension must survive the file
	// channel closing, and the resume afterwards must not crash.
	source.mu.Lock()
	source.pending = append(source.pending, "add the gym hoodie to my cart")
	source.mu.Unlock()

	close(files)
	time.Sleep(50 * time.Millisecond)

	if err := source.Start(); err != nil {
		t.Fatalf("resume returned %v", err)
	}

	select {
	case batch := <-source.Results():
		if len(batch) != 1 || batch[0] != "add the gym hoodie to my cart" {
			t.Errorf("batch = %v, want the buffered transcript", batch)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for buffered transcript")
	}

	select {
	case _, ok := <-source.Results():
		if ok {
			t.Error("results channel still open after input closed")
		}
	case <-time.After(2 * time.Second):
		t.Error("results channel never closed after input closed")
	}
}
