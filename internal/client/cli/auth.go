package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/services"
	"github.com/dmitrijs2005/gophchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a user name and password, creates the account and
// signs in. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.authService.Register(ctx, userName, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", describe(err))
		return err
	}

	a.signIn(ctx, acc)
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and signs in. Key material is derived from
// the same credentials, so logging in on another machine gives the same
// identity.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", describe(err))
		return err
	}

	a.signIn(ctx, acc)
	fmt.Fprintf(a.out, "Logged in as %s\n", acc.Username)
	return nil
}

// Logout forgets the stored session and the in-memory key pair.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.account.Wipe()
	a.account = nil
	a.signedIn.Store(false)
	a.setUnread(0)
	return nil
}

// restore resumes the stored session, if any.
func (a *App) restore(ctx context.Context) {
	acc, err := a.authService.Restore(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrLocalDataNotAvailable) {
			a.logger.Warn(ctx, "session not restored", "error", err)
		}
		return
	}
	a.signIn(ctx, acc)
	fmt.Fprintf(a.out, "Welcome back, %s\n", acc.Username)
}

func (a *App) signIn(ctx context.Context, acc *services.Account) {
	if a.account != nil && a.account != acc {
		a.account.Wipe()
	}
	a.account = acc
	a.signedIn.Store(true)
	a.refreshStatus(ctx)
}

func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrAlreadyExists):
		return "user name already taken"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, client.ErrUnauthorized):
		return "wrong user name or password"
	}
	return err.Error()
}
