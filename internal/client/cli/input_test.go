package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) *LineReader {
	return NewLineReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(lines("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	lr := lines("lastline")

	got, err := GetSimpleText(lr, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(lr, "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_OK(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("pw1"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("pw1"), pw)
}

func TestLineReader_CRLFAndOrder(t *testing.T) {
	lr := lines("one\r\ntwo\n")

	first, err := lr.ReadLine()
	require.NoError(t, err)
	second, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, []string{first, second})
}

// Repeated Next calls before a line is taken must not start more reads.
func TestLineReader_SingleReadInFlight(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	lr := NewLineReader(pr)

	ch := lr.Next()
	for i := 0; i < 3; i++ {
		assert.Equal(t, ch, lr.Next())
	}

	go func() { _, _ = pw.Write([]byte("a\nb\n")) }()

	select {
	case l := <-ch:
		assert.Equal(t, "a", l.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("no line")
	}

	// "b" is still buffered in the reader and comes out of the next read.
	got, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	_ = pw.Close()
}
