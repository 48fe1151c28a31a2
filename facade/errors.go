package facade

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by BuildInferer for a Backend value other
// than BackendBP/BackendSDLP.
var ErrUnknownBackend = errors.New("facade: unknown backend")

func facadeErrorf(method string, err error) error {
	return fmt.Errorf("facade: %s: %w", method, err)
}
