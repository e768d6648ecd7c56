// Package aierrors defines the gateway error taxonomy surfaced by completion
// providers. It lives below internal/ai so that provider subpackages can use
// it without importing the factory package.
package aierrors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrProviderUnavailable = errors.New("ai provider unavailable")
	ErrInferenceTimeout    = errors.New("ai inference timeout")
	ErrRateLimited         = errors.New("ai provider rate limited")
	ErrInvalidResponse     = errors.New("ai provider returned invalid response")
)

// ClassifyTransport maps transport-level errors from a provider HTTP call to
// sentinel errors. Providers call this on every http.Client.Do failure.
func ClassifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrInferenceTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrInferenceTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}

// ClassifyStatus maps a non-200 provider status code to a sentinel error.
func ClassifyStatus(status int) error {
	switch {
	case status == 429:
		return fmt.Errorf("%w: status %d", ErrRateLimited, status)
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	default:
		return fmt.Errorf("%w: status %d", ErrInvalidResponse, status)
	}
}
