// Package client talks to the GophChat server and owns the local database.
//
// # Overview
//
// The package provides:
//  1. The Client interface: account calls (Register, Login, Ping), user
//     lookup and the message operations of the ChatService.
//  2. GRPCClient, the gRPC implementation. It injects the access token via an
//     interceptor, refreshes an expired token once per failed call and maps
//     gRPC status codes to sentinel errors.
//  3. InitDatabase and RunMigrations, which open the local SQLite file and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrNotFound, ErrAlreadyExists, ErrForbidden, ErrInvalidInput and
// ErrLocalDataNotAvailable.
//
// GRPCClient is safe for concurrent use.
package client
