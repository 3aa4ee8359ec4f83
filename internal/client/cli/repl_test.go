package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error { f.calls = append(f.calls, "users"); return nil }
func (f *fakeExec) Chat(ctx context.Context, partner string) error {
	f.calls = append(f.calls, "chat "+partner)
	return nil
}

// captureOutput swaps the print seams and returns what the REPL printed.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	origPrint, origPrintln := printFn, printlnFn
	printFn = func(a ...any) (int, error) { return fmt.Fprint(&sb, a...) }
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&sb, a...) }
	t.Cleanup(func() {
		printFn = origPrint
		printlnFn = origPrintln
	})
	return &sb
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	input := lines(strings.Join([]string{
		"help",
		"users",
		"login",
		"help",
		"",
		"USERS",
		"chat",
		"chat bob extra",
		"foobar",
		"logout",
		"exit",
		"users",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(status) " }, input)

	assert.Equal(t, []string{"login", "users", "chat bob", "logout"}, exec.calls)

	got := out.String()
	assert.Contains(t, got, "gophchat (status) > ")
	assert.Contains(t, got, "Available commands: register, login, exit")
	assert.Contains(t, got, "Available commands: users, chat <user>, logout, exit")
	assert.Contains(t, got, "Please log in first.")
	assert.Contains(t, got, "Usage: chat <user>")
	assert.Contains(t, got, "Unknown command: foobar")
	assert.Contains(t, got, "Bye!")
}

func TestRunREPL_EndOfInput(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, lines("register\n"))

	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestRunREPL_ContextCancel(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		runREPL(ctx, &fakeExec{}, func() string { return "" }, blockingInput{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("REPL ignored cancellation")
	}
}
