// Package client talks to the remote YouQuote API.
//
// # Overview
//
//  1. Client is the transport-agnostic contract: public reads, login and
//     registration, user administration and the quote moderation commands.
//  2. HTTPClient implements it with JSON over HTTP. It reads the bearer
//     credential from a CredentialSource at every request construction and
//     tags each request with an X-Request-ID.
//  3. InitDatabase and RunMigrations bootstrap the local SQLite database
//     holding the persisted session.
//
// # Error Handling
//
// Every failed call returns an *APIError whose Kind places it in the
// taxonomy (transport, authorization, validation, not-found, unexpected).
// Match kinds with errors.Is against ErrUnavailable, ErrUnauthorized,
// ErrValidation, ErrNotFound and ErrUnexpected. UserMessage turns any error
// into the single line shown to the user. Nothing is retried.
package client
