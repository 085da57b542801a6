package dispatch

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/docdbtools/cosmos-explorer/internal/render"
)

const prompt = "cosmos> "

// LineReader supplies interactive input lines. Production uses a
// liner-backed reader; tests inject a scripted one.
type LineReader interface {
	// ReadLine blocks for the next input line. It returns io.EOF at end
	// of input and ErrInterrupted when the user aborts the prompt.
	ReadLine() (string, error)

	// AppendHistory records a line for line-editing recall.
	AppendHistory(line string)

	// Close releases the reader's terminal state.
	Close() error
}

// ErrInterrupted reports that the user aborted the prompt.
var ErrInterrupted = errors.New("dispatch: prompt interrupted")

// linerReader adapts peterh/liner to the LineReader interface.
type linerReader struct {
	state *liner.State
}

// NewLinerReader creates a LineReader with line editing and in-process
// history. History is not persisted across runs.
func NewLinerReader() LineReader {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)
	return &linerReader{state: s}
}

func (r *linerReader) ReadLine() (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return line, nil
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

func (r *linerReader) Close() error {
	return r.state.Close()
}

// REPL owns the interactive session: it blocks on input, dispatches one
// command at a time and terminates on an exit command, end of input or
// interrupt.
type REPL struct {
	dispatcher *Dispatcher
	reader     LineReader
	surface    render.Surface
}

// NewREPL creates a REPL over a dispatcher, an input source and a render
// surface.
func NewREPL(dispatcher *Dispatcher, reader LineReader, surface render.Surface) *REPL {
	return &REPL{
		dispatcher: dispatcher,
		reader:     reader,
		surface:    surface,
	}
}

// Run blocks until the session terminates. All exits are clean: Ctrl-C,
// end of input and explicit exit commands each produce the same goodbye
// path rather than a crash.
func (r *REPL) Run(ctx context.Context) {
	r.surface.Banner()

	for {
		if ctx.Err() != nil {
			r.goodbye()
			return
		}

		line, err := r.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
				r.goodbye()
				return
			}
			r.surface.Errorf("Input error: %v", err)
			r.goodbye()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.reader.AppendHistory(line)

		if r.dispatcher.Execute(ctx, line) {
			r.goodbye()
			return
		}
	}
}

func (r *REPL) goodbye() {
	r.surface.Infof("Goodbye!")
}
