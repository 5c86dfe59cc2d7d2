// Package terminal wraps interactive line input, including reads
// bounded by a deadline. A single background goroutine owns the
// underlying stream; timed reads select between the line channel and a
// timer, so callers never see a platform branch.
package terminal

import (
	"bufio"
	"io"
	"time"
)

// LineReader reads lines typed at the terminal.
type LineReader interface {
	// ReadLine blocks until a full line is available.
	ReadLine() (string, error)
	// ReadLineTimeout waits up to timeout for a line. The second return
	// is false when the deadline expired with no input, which is
	// distinct from the user submitting an empty line.
	ReadLineTimeout(timeout time.Duration) (string, bool, error)
}

type reader struct {
	lines <-chan string
}

// NewReader creates a LineReader over r. The stream is consumed by a
// goroutine for the lifetime of the process.
func NewReader(r io.Reader) LineReader {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return &reader{lines: lines}
}

func (r *reader) ReadLine() (string, error) {
	line, ok := <-r.lines
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func (r *reader) ReadLineTimeout(timeout time.Duration) (string, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case line, ok := <-r.lines:
		if !ok {
			return "", false, io.EOF
		}
		return line, true, nil
	case <-timer.C:
		return "", false, nil
	}
}
