package game

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// lineReader reads lines on a background goroutine so a blocked read can be
// abandoned when the context is canceled.
type lineReader struct {
	scanner  *bufio.Scanner
	lines    chan lineResult
	done     chan struct{}
	once     sync.Once
	stopOnce sync.Once
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		scanner: bufio.NewScanner(in),
		lines:   make(chan lineResult),
		done:    make(chan struct{}),
	}
}

// stop releases the scan goroutine. A read already blocked in the
// underlying reader finishes first; its line is dropped.
func (r *lineReader) stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

// next returns the next trimmed line, io.EOF once input is exhausted, or the
// context error.
func (r *lineReader) next(ctx context.Context) (string, error) {
	r.once.Do(func() { go r.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(res.text), res.err
	}
}

func (r *lineReader) scan() {
	defer close(r.lines)
	for {
		select {
		case <-r.done:
			return
		default:
		}
		if !r.scanner.Scan() {
			break
		}
		if !r.send(lineResult{text: r.scanner.Text()}) {
			return
		}
	}
	if err := r.scanner.Err(); err != nil {
		r.send(lineResult{err: err})
	}
}

func (r *lineReader) send(res lineResult) bool {
	select {
	case r.lines <- res:
		return true
	case <-r.done:
		return false
	}
}
