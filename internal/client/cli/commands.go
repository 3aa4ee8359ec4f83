package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/gophchat/internal/client/chat"
	"github.com/dmitrijs2005/gophchat/internal/client/client"
)

// Users lists every other account with its unread count.
func (a *App) Users(ctx context.Context) error {
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load users: %s\n", describe(err))
		return err
	}
	total, bySender, err := a.client.UnreadCount(ctx)
	if err != nil {
		a.logger.Warn(ctx, "unread count failed", "error", err)
	} else {
		a.setUnread(total)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })

	shown := 0
	for _, u := range users {
		if u.ID == a.account.UserID {
			continue
		}
		shown++
		if n := bySender[u.ID]; n > 0 {
			fmt.Fprintf(a.out, "  %s (%d unread)\n", u.Username, n)
			continue
		}
		fmt.Fprintf(a.out, "  %s\n", u.Username)
	}
	if shown == 0 {
		fmt.Fprintln(a.out, "No other users yet.")
	}
	return nil
}

// Chat opens the conversation with partner and returns when the user
// leaves it.
func (a *App) Chat(ctx context.Context, partner string) error {
	s := chat.NewSession(a.client, a.account.Keys.PrivateKey, a.out, chat.Options{
		Push:         a.pushFactory(),
		Token:        a.accessToken,
		PollInterval: a.config.HistoryPollInterval,
		Logger:       a.logger,
	})

	err := s.Run(ctx, partner, a.reader)
	switch {
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintf(a.out, "User %s not found.\n", partner)
	case err != nil && ctx.Err() == nil:
		fmt.Fprintf(a.out, "Conversation ended: %s\n", describe(err))
	}

	a.refreshStatus(ctx)
	return err
}
