package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error markers used to classify failures.
var (
	ErrService        = errors.New("replay service failure")
	ErrTimeout        = errors.New("deadline exceeded")
	ErrMemoryPressure = errors.New("memory pressure")
	ErrSessionClosed  = errors.New("session closed")
	ErrExtraction     = errors.New("extraction degraded")
	ErrConsistency    = errors.New("consistency failure")
	ErrConfiguration  = errors.New("configuration error")
	ErrRecordInvalid  = errors.New("invalid record")
)

// FailureKind is the coarse category the driver reacts to.
type FailureKind string

// Failure kinds, from least to most severe.
const (
	FailureNone          FailureKind = "none"
	FailureTransient     FailureKind = "transient"
	FailureExtraction    FailureKind = "extraction"
	FailureConsistency   FailureKind = "consistency"
	FailureConfiguration FailureKind = "configuration"
)

// Classify maps an error to the failure kind the pipeline handles it as.
// Unknown errors coming out of the replay path are transient.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrConsistency), errors.Is(err, ErrRecordInvalid):
		return FailureConsistency
	case errors.Is(err, ErrConfiguration):
		return FailureConfiguration
	case errors.Is(err, ErrExtraction):
		return FailureExtraction
	default:
		return FailureTransient
	}
}

// Wrap builds an error message that includes stage context while tagging it
// with marker for later classification.
func Wrap(marker error, stage Stage, operation, message string, err error) error {
	detail := buildDetail(string(stage), operation, message)
	if marker == nil {
		marker = ErrService
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}

	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}

	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}

	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}

	if len(parts) == 0 {
		return "failure"
	}

	return strings.Join(parts, ": ")
}
