// Package common contains shared constants and sentinel errors used across
// GophChat components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AccessTokenQueryParam is the query parameter that carries the bearer token
// during the push channel handshake, where headers cannot be set.
const AccessTokenQueryParam = "access_token"

// PushPath is the HTTP path of the push channel endpoint.
const PushPath = "/ws"
