package transform

import (
	"fmt"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// FinancialTransform is one what-if change to a company's annual figures.
// Transforms compose: each receives the output of the previous one.
type FinancialTransform interface {
	// Apply returns a modified copy of base
	Apply(base domain.FinancialInput) (domain.FinancialInput, error)

	// Name returns a short identifier (e.g. "scale_revenue")
	Name() string

	// Description returns a human-readable summary of the change
	Description() string

	// Validate checks the parameters against base without applying them
	Validate(base domain.FinancialInput) error
}

// ApplyTransforms applies transforms in order. FinancialInput is a value type,
// so base is never modified.
func ApplyTransforms(base domain.FinancialInput, transforms []FinancialTransform) (domain.FinancialInput, error) {
	current := base

	for i, transform := range transforms {
		if transform == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
