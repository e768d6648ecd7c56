// Package ai wires completion providers behind the models.CompletionProvider
// interface and defines the gateway error taxonomy they surface.
package ai

import "github.com/harithravi/talklens/internal/ai/aierrors"

// The error taxonomy lives in the aierrors subpackage so that provider
// subpackages can use it without importing this (factory) package. The names
// are re-exported here for consumers of the gateway.
var (
	ErrProviderUnavailable = aierrors.ErrProviderUnavailable
	ErrInferenceTimeout    = aierrors.ErrInferenceTimeout
	ErrRateLimited         = aierrors.ErrRateLimited
	ErrInvalidResponse     = aierrors.ErrInvalidResponse
)

// ClassifyTransport maps transport-level errors from a provider HTTP call to
// sentinel errors. Providers call this on every http.Client.Do failure.
func ClassifyTransport(err error) error { return aierrors.ClassifyTransport(err) }

// ClassifyStatus maps a non-200 provider status code to a sentinel error.
func ClassifyStatus(status int) error { return aierrors.ClassifyStatus(status) }
