package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("el email ya está registrado")

	// ErrInvalidCredentials is returned on failed login. The message
	// deliberately does not reveal whether the account exists.
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// ErrPatientNotFound is returned when a patient name resolves to
	// no patient for the requesting clinician.
	ErrPatientNotFound = errors.New("paciente no encontrado")

	// ErrEvaluationNotFound is returned when meal plan generation can
	// find no evaluation to base the plan on.
	ErrEvaluationNotFound = errors.New("no se encontró evaluación para este paciente")
)

// GenerationError wraps a failure of the LLM provider (transport
// error, non-200 status or empty response). Handlers surface it as a
// 500 with details; the monitoring path recovers from it locally.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("meal plan generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
