package dispatch_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
	"github.com/docdbtools/cosmos-explorer/internal/dispatch"
	"github.com/docdbtools/cosmos-explorer/tests/mocks"
)

// scriptedReader feeds a fixed sequence of lines, then a final error.
type scriptedReader struct {
	lines   []string
	final   error
	history []string
	closed  bool
}

func (r *scriptedReader) ReadLine() (string, error) {
	if len(r.lines) == 0 {
		return "", r.final
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) AppendHistory(line string) {
	r.history = append(r.history, line)
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func TestREPL_ExitCommandTerminatesCleanly(t *testing.T) {
	client := &mocks.MockClient{}
	surface := &mocks.SurfaceRecorder{}
	d := dispatch.New(client, surface)
	reader := &scriptedReader{lines: []string{"exit"}, final: io.EOF}

	dispatch.NewREPL(d, reader, surface).Run(context.Background())

	assert.Equal(t, 1, surface.Banners)
	require.NotEmpty(t, surface.Infos)
	assert.Contains(t, surface.Infos[len(surface.Infos)-1], "Goodbye")
}

func TestREPL_EndOfInputTerminatesCleanly(t *testing.T) {
	client := &mocks.MockClient{}
	surface := &mocks.SurfaceRecorder{}
	d := dispatch.New(client, surface)
	reader := &scriptedReader{final: io.EOF}

	dispatch.NewREPL(d, reader, surface).Run(context.Background())

	require.NotEmpty(t, surface.Infos)
	assert.Contains(t, surface.Infos[len(surface.Infos)-1], "Goodbye")
}

func TestREPL_InterruptTerminatesCleanly(t *testing.T) {
	client := &mocks.MockClient{}
	surface := &mocks.SurfaceRecorder{}
	d := dispatch.New(client, surface)
	reader := &scriptedReader{final: dispatch.ErrInterrupted}

	dispatch.NewREPL(d, reader, surface).Run(context.Background())

	require.NotEmpty(t, surface.Infos)
	assert.Contains(t, surface.Infos[len(surface.Infos)-1], "Goodbye")
	assert.Empty(t, surface.Errors)
}

func TestREPL_DispatchesCommandsUntilExit(t *testing.T) {
	client := &mocks.MockClient{}
	surface := &mocks.SurfaceRecorder{}
	d := dispatch.New(client, surface)
	client.On("ListDatabases", mock.Anything).Return([]docdb.DatabaseRef{{ID: "MyDB"}}, nil)
	client.On("ListContainers", mock.Anything, "MyDB").Return([]docdb.ContainerRef{}, nil)

	reader := &scriptedReader{lines: []string{"databases", "", "quit"}, final: io.EOF}
	dispatch.NewREPL(d, reader, surface).Run(context.Background())

	require.Len(t, surface.DatabaseRows, 1)
	// Blank lines are skipped and never recorded.
	assert.Equal(t, []string{"databases", "quit"}, reader.history)
}

func TestREPL_BadInputKeepsLoopAlive(t *testing.T) {
	client := &mocks.MockClient{}
	surface := &mocks.SurfaceRecorder{}
	d := dispatch.New(client, surface)
	client.On("ListDatabases", mock.Anything).Return([]docdb.DatabaseRef{}, nil)

	reader := &scriptedReader{lines: []string{"nonsense", "containers", "databases", "exit"}, final: io.EOF}
	dispatch.NewREPL(d, reader, surface).Run(context.Background())

	// Unknown command and usage error both left the loop running.
	require.Len(t, surface.Errors, 1)
	require.Len(t, surface.Usages, 1)
	client.AssertCalled(t, "ListDatabases", mock.Anything)
}

func TestREPL_CancelledContextTerminates(t *testing.T) {
	client := &mocks.MockClient{}
	surface := &mocks.SurfaceRecorder{}
	d := dispatch.New(client, surface)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &scriptedReader{lines: []string{"databases"}, final: io.EOF}
	dispatch.NewREPL(d, reader, surface).Run(ctx)

	client.AssertNotCalled(t, "ListDatabases", mock.Anything)
	require.NotEmpty(t, surface.Infos)
	assert.Contains(t, surface.Infos[len(surface.Infos)-1], "Goodbye")
}
