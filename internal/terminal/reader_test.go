package terminal_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbatra/quizforge/internal/terminal"
)

func TestReadLine(t *testing.T) {
	r := terminal.NewReader(strings.NewReader("first\nsecond\n"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineTimeout_LineArrives(t *testing.T) {
	r := terminal.NewReader(strings.NewReader("hello\n"))

	line, ok, err := r.ReadLineTimeout(time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", line)
}

func TestReadLineTimeout_Expires(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := terminal.NewReader(pr)

	line, ok, err := r.ReadLineTimeout(20 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok, "an expired deadline is not an error")
	assert.Empty(t, line)
}

func TestReadLineTimeout_TimeoutThenLine(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := terminal.NewReader(pr)

	_, ok, err := r.ReadLineTimeout(20 * time.Millisecond)
	require.NoError(t, err)
	require.False(t, ok)

	go pw.Write([]byte("late\n"))

	line, ok, err := r.ReadLineTimeout(time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "late", line)
}

func TestReadLineTimeout_EOF(t *testing.T) {
	r := terminal.NewReader(strings.NewReader(""))

	_, _, err := r.ReadLineTimeout(time.Second)
	assert.ErrorIs(t, err, io.EOF)
}
