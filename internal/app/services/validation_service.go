package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// ValidationService drives the two-step approval of generated sessions:
// the department head validates, then the vice-dean gives the final validation.
type ValidationService interface {
	PendingDepartmentSessions(ctx context.Context, departmentID int64) ([]models.ExamSession, error)
	ValidateSession(ctx context.Context, sessionID, departmentID int64) (*models.ExamSession, error)
	AwaitingFinalValidation(ctx context.Context) ([]models.ExamSession, error)
	FinalValidateSession(ctx context.Context, sessionID int64) (*models.ExamSession, error)
}

type validationServiceImpl struct {
	stores Stores
	logger zerolog.Logger
}

// NewValidationService creates a new ValidationService
func NewValidationService(stores Stores, logger zerolog.Logger) ValidationService {
	return &validationServiceImpl{stores: stores, logger: logger}
}

// PendingDepartmentSessions lists the department's sessions not yet validated, newest first
func (s *validationServiceImpl) PendingDepartmentSessions(ctx context.Context, departmentID int64) ([]models.ExamSession, error) {
	if _, err := s.stores.Departments.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	validated := false
	sessions, err := s.stores.Sessions.List(ctx, repositories.SessionFilter{
		DepartmentID: &departmentID,
		Validated:    &validated,
		NewestFirst:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing pending sessions of department %d: %w", departmentID, err)
	}
	return sessions, nil
}

// ValidateSession marks a session as validated by the head of its department
func (s *validationServiceImpl) ValidateSession(ctx context.Context, sessionID, departmentID int64) (*models.ExamSession, error) {
	session, ownerDepartment, err := s.stores.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if ownerDepartment != departmentID {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("exam session %d does not belong to department %d", sessionID, departmentID))
	}
	if session.Validated {
		return nil, apperrors.NewCustomError(apperrors.ErrAlreadyValidated, fmt.Sprintf("exam session %d is already validated", sessionID)).
			WithDetails(map[string]interface{}{"examSessionId": sessionID})
	}

	if err := s.stores.Sessions.SetValidated(ctx, sessionID); err != nil {
		return nil, err
	}
	session.Validated = true

	s.logger.Info().Int64("sessionId", sessionID).Int64("departmentId", departmentID).Msg("Exam session validated")
	return session, nil
}

// AwaitingFinalValidation lists sessions validated by their department but not yet by the vice-dean
func (s *validationServiceImpl) AwaitingFinalValidation(ctx context.Context) ([]models.ExamSession, error) {
	validated, final := true, false
	sessions, err := s.stores.Sessions.List(ctx, repositories.SessionFilter{
		Validated:      &validated,
		FinalValidated: &final,
		NewestFirst:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing sessions awaiting final validation: %w", err)
	}
	return sessions, nil
}

// FinalValidateSession gives the final validation. The department head must have validated first.
func (s *validationServiceImpl) FinalValidateSession(ctx context.Context, sessionID int64) (*models.ExamSession, error) {
	session, _, err := s.stores.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Validated {
		return nil, apperrors.NewCustomError(apperrors.ErrNotYetValidated, fmt.Sprintf("exam session %d must be validated by its department first", sessionID)).
			WithDetails(map[string]interface{}{"examSessionId": sessionID})
	}
	if session.FinalValidated {
		return nil, apperrors.NewCustomError(apperrors.ErrAlreadyValidated, fmt.Sprintf("exam session %d already has its final validation", sessionID)).
			WithDetails(map[string]interface{}{"examSessionId": sessionID})
	}

	if err := s.stores.Sessions.SetFinalValidated(ctx, sessionID); err != nil {
		return nil, err
	}
	session.FinalValidated = true

	s.logger.Info().Int64("sessionId", sessionID).Msg("Exam session final validation recorded")
	return session, nil
}
