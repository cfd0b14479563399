package services

import (
	"errors"
	"fmt"

	"github.com/Subhashreel/orders/pkg/apperr"

	"gorm.io/gorm"
)

// notFoundOr maps gorm's missing-row error to a NotFound with the given
// message and wraps anything else as an internal failure.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(format, args...)
	}
	return apperr.Internal(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}
