package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.account != nil {
		s = a.account.Username + " "
	}

	a.mu.Lock()
	mode, unread := a.mode, a.unread
	a.mu.Unlock()

	if unread > 0 {
		s += fmt.Sprintf("[%d unread] ", unread)
	}
	s += string(mode)
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

// Root resumes the stored session, starts the status watcher and runs the
// REPL until the user leaves.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	fmt.Fprintln(a.out, "Welcome to GophChat (type 'help' for commands)")

	a.restore(ctx)
	if !a.isLoggedIn() {
		a.refreshStatus(ctx)
	}

	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		a.StartOnlineStatusWatcher(ctx, a.config.HistoryPollInterval*10)
	}()
	defer func() {
		cancel()
		<-watcherDone
	}()

	runREPL(ctx, a, a.getStatus, a.reader)
}
