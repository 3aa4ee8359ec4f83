// Package cli provides the interactive GophChat console client.
//
// It wires configuration, the API client, the local session store and an
// interactive REPL. Typical flow: resume the stored session or prompt for
// credentials, then list users and open conversations.
//
// Key features:
//   - Register / Login / Logout, with session resumption on start
//   - Users with per-user unread counts and an unread badge in the prompt
//   - Chat: an end-to-end encrypted conversation with live updates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
