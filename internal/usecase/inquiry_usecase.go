package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-landing-backend/internal/domain"
	"go-landing-backend/internal/inquiry"
	"go-landing-backend/pkg/logger"

	"github.com/google/uuid"
)

// EngineFactory builds a fresh engine for a new session
type EngineFactory func() domain.InquiryEngine

type inquiryUsecase struct {
	repo      domain.InquirySessionRepository
	newEngine EngineFactory
	validator *inquiry.Validator
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(repo domain.InquirySessionRepository, newEngine EngineFactory, validator *inquiry.Validator) domain.InquiryUsecase {
	if validator == nil {
		validator = inquiry.DefaultValidator()
	}
	return &inquiryUsecase{
		repo:      repo,
		newEngine: newEngine,
		validator: validator,
	}
}

// ValidateField runs the field rules without touching any session
func (uc *inquiryUsecase) ValidateField(field domain.Field, value string) string {
	return uc.validator.ValidateField(field, value)
}

// StartSession creates an empty form bound to a new session id
func (uc *inquiryUsecase) StartSession(ctx context.Context) (*domain.InquirySession, error) {
	session := &domain.InquirySession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Engine:    uc.newEngine(),
	}
	if err := uc.repo.Save(ctx, session); err != nil {
		session.Engine.Close()
		return nil, fmt.Errorf("failed to save inquiry session: %w", err)
	}
	logger.Log.Debug("inquiry session started", "session_id", session.ID)
	return session, nil
}

func (uc *inquiryUsecase) engine(ctx context.Context, sessionID string) (domain.InquiryEngine, error) {
	session, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Engine, nil
}

func (uc *inquiryUsecase) Snapshot(ctx context.Context, sessionID string) (domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.InquirySnapshot{}, err
	}
	return eng.Snapshot(), nil
}

func (uc *inquiryUsecase) ChangeField(ctx context.Context, sessionID string, field domain.Field, value string) (domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.InquirySnapshot{}, err
	}
	eng.OnFieldChange(field, value)
	return eng.Snapshot(), nil
}

func (uc *inquiryUsecase) BlurField(ctx context.Context, sessionID string, field domain.Field, value string) (domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.InquirySnapshot{}, err
	}
	eng.OnFieldBlur(field, value)
	return eng.Snapshot(), nil
}

// ApplyForm replays a full form post as change followed by blur for each field
func (uc *inquiryUsecase) ApplyForm(ctx context.Context, sessionID string, form domain.FormState) (domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.InquirySnapshot{}, err
	}
	for _, field := range domain.AllFields {
		value := form.Get(field)
		eng.OnFieldChange(field, value)
		eng.OnFieldBlur(field, value)
	}
	return eng.Snapshot(), nil
}

// Submit validates and, when valid, starts the simulated submission.
// An invalid form returns *domain.InquiryValidationError alongside the snapshot.
func (uc *inquiryUsecase) Submit(ctx context.Context, sessionID string) (domain.SubmitOutcome, domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.SubmitIgnored, domain.InquirySnapshot{}, err
	}

	outcome := eng.Submit()
	snap := eng.Snapshot()
	logger.Log.Info("inquiry submit", "session_id", sessionID, "outcome", outcome.String())

	if outcome == domain.SubmitInvalid {
		return outcome, snap, &domain.InquiryValidationError{Fields: snap.Errors}
	}
	return outcome, snap, nil
}

func (uc *inquiryUsecase) Reset(ctx context.Context, sessionID string) (domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.InquirySnapshot{}, err
	}
	if err := eng.Reset(); err != nil {
		return eng.Snapshot(), err
	}
	return eng.Snapshot(), nil
}

// Locate starts a lookup using the geolocation outcome the browser reported
func (uc *inquiryUsecase) Locate(ctx context.Context, sessionID string, req domain.LocateRequest) (domain.InquirySnapshot, error) {
	eng, err := uc.engine(ctx, sessionID)
	if err != nil {
		return domain.InquirySnapshot{}, err
	}
	if err := eng.LocateMe(ctx, inquiry.NewReportedGeolocator(req)); err != nil {
		if errors.Is(err, domain.ErrAlreadyLocating) {
			return eng.Snapshot(), err
		}
		return domain.InquirySnapshot{}, fmt.Errorf("failed to start location lookup: %w", err)
	}
	return eng.Snapshot(), nil
}
