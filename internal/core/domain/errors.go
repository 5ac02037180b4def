package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
)

// errString builds a validation error for domain invariants.
func errString(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
