package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/client/chat"
)

// printFn and printlnFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	Chat(ctx context.Context, partner string) error
}

// runREPL starts a simple read–eval–print loop for the GophChat CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits at the end of input, when ctx ends, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - users          - list users with unread counts
//	  - chat <user>    - open a conversation
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in chat.Input) {
	for {
		printFn(fmt.Sprintf("gophchat %s> ", statusFn()))

		var line chat.Line
		select {
		case <-ctx.Done():
			return
		case line = <-in.Next():
		}
		if line.Err != nil {
			return
		}

		parts := strings.Fields(line.Text)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if needsLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, chat <user>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "users", "u":
			_ = a.Users(ctx)

		case "chat":
			if len(args) == 0 {
				printlnFn("Usage: chat <user>")
				continue
			}
			_ = a.Chat(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "users", "u", "chat", "logout":
		return true
	}
	return false
}
