package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/dmitrijs2005/gophchat/internal/client/chat"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// LineReader reads console lines on demand. A read starts only when Next is
// called with nothing read ahead, so at most one read is ever in flight and
// a password prompt never competes with it.
type LineReader struct {
	r *bufio.Reader

	mu      sync.Mutex
	reading bool
	lines   chan chat.Line
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r), lines: make(chan chat.Line, 1)}
}

// Next returns the channel the next line arrives on. The same channel is
// returned on every call.
func (lr *LineReader) Next() <-chan chat.Line {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if !lr.reading && len(lr.lines) == 0 {
		lr.reading = true
		go lr.read()
	}
	return lr.lines
}

func (lr *LineReader) read() {
	text, err := lr.r.ReadString('\n')
	line := chat.Line{Text: strings.TrimRight(text, "\r\n")}
	if err != nil && !(errors.Is(err, io.EOF) && len(text) > 0) {
		line = chat.Line{Err: err}
	}

	lr.mu.Lock()
	lr.lines <- line
	lr.reading = false
	lr.mu.Unlock()
}

// ReadLine blocks for the next line.
func (lr *LineReader) ReadLine() (string, error) {
	line := <-lr.Next()
	return line.Text, line.Err
}

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. Surrounding whitespace is trimmed.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *LineReader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
