package domain

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

var defaultConstants = m.Constants{
	MaxRetries: 3,
	TimeoutMS:  5000,
	APIVersion: "v2",
	RequestID:  "550e8400-e29b-41d4-a716-446655440000",
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Constants returns a copy of the process-wide constants bag.
func Constants() m.Constants {
	return defaultConstants
}

// RequestUUID parses the bag's RequestID.
func RequestUUID(c m.Constants) (uuid.UUID, error) {
	id, err := uuid.Parse(c.RequestID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse request id: %w", err)
	}

	return id, nil
}

// ValidateConstants checks field ranges and formats of c.
func ValidateConstants(c m.Constants) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: constants: %w", ErrInvalidInput, err)
	}

	return nil
}
