package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-landing-backend/internal/domain"
	"go-landing-backend/internal/inquiry"
	"go-landing-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Save(ctx context.Context, session *domain.InquirySession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, id string) (*domain.InquirySession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InquirySession), args.Error(1)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newEngineFactory(t *testing.T) usecase.EngineFactory {
	return func() domain.InquiryEngine {
		e := inquiry.NewEngine(inquiry.Config{SubmitDelay: time.Hour, LocateDelay: time.Hour})
		t.Cleanup(e.Close)
		return e
	}
}

func sessionWithEngine(t *testing.T, id string) *domain.InquirySession {
	return &domain.InquirySession{ID: id, Engine: newEngineFactory(t)()}
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Should save a fresh idle session", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Save", ctx, mock.AnythingOfType("*domain.InquirySession")).Return(nil)
		uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

		session, err := uc.StartSession(ctx)

		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, domain.StatusIdle, session.Engine.Snapshot().Status)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail when the store rejects the session", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Save", ctx, mock.Anything).Return(errors.New("store full"))
		uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

		_, err := uc.StartSession(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "store full")
	})
}

func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSessionRepo)
	repo.On("Get", ctx, "missing").Return(nil, domain.ErrSessionNotFound)
	uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

	_, err := uc.Snapshot(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, _, err = uc.Submit(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestFieldInteractions(t *testing.T) {
	ctx := context.Background()
	session := sessionWithEngine(t, "s1")
	repo := new(MockSessionRepo)
	repo.On("Get", ctx, "s1").Return(session, nil)
	uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

	snap, err := uc.ChangeField(ctx, "s1", domain.FieldEmail, "nope")
	require.NoError(t, err)
	assert.Empty(t, snap.Errors)

	snap, err = uc.BlurField(ctx, "s1", domain.FieldEmail, "nope")
	require.NoError(t, err)
	assert.Equal(t, inquiry.MsgEmailInvalid, snap.VisibleErrors[domain.FieldEmail])
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return field errors for an empty form", func(t *testing.T) {
		session := sessionWithEngine(t, "s1")
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "s1").Return(session, nil)
		uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

		outcome, snap, err := uc.Submit(ctx, "s1")

		assert.Equal(t, domain.SubmitInvalid, outcome)
		var verr *domain.InquiryValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 3)
		assert.Equal(t, domain.StatusIdle, snap.Status)
	})

	t.Run("Should accept a valid form posted in one go", func(t *testing.T) {
		session := sessionWithEngine(t, "s2")
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "s2").Return(session, nil)
		uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

		snap, err := uc.ApplyForm(ctx, "s2", domain.FormState{
			Name:  "Jane Doe",
			Phone: "+91 90520 88880",
			Type:  string(domain.InquiryCorporate),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.AllFields, snap.Touched)
		assert.Empty(t, snap.Errors)

		outcome, snap, err := uc.Submit(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, domain.SubmitAccepted, outcome)
		assert.Equal(t, domain.StatusSubmitting, snap.Status)

		outcome, _, err = uc.Submit(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, domain.SubmitIgnored, outcome)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	session := sessionWithEngine(t, "s1")
	repo := new(MockSessionRepo)
	repo.On("Get", ctx, "s1").Return(session, nil)
	uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

	_, err := uc.Reset(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrResetNotAllowed)
}

func TestLocate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should start a lookup when the browser granted access", func(t *testing.T) {
		session := sessionWithEngine(t, "s1")
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "s1").Return(session, nil)
		uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

		snap, err := uc.Locate(ctx, "s1", domain.LocateRequest{Granted: true, Latitude: 17.4, Longitude: 78.5})
		require.NoError(t, err)
		assert.True(t, snap.IsLocating)

		_, err = uc.Locate(ctx, "s1", domain.LocateRequest{Granted: true})
		assert.ErrorIs(t, err, domain.ErrAlreadyLocating)
	})

	t.Run("Should surface a notice when the browser denied access", func(t *testing.T) {
		session := sessionWithEngine(t, "s2")
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "s2").Return(session, nil)
		uc := usecase.NewInquiryUsecase(repo, newEngineFactory(t), nil)

		snap, err := uc.Locate(ctx, "s2", domain.LocateRequest{Granted: false, Reason: "User denied Geolocation"})
		require.NoError(t, err)
		assert.False(t, snap.IsLocating)
		assert.Equal(t, inquiry.LocationNotice, snap.Notice)
		assert.Empty(t, snap.Form.Location)
	})
}

func TestValidateField(t *testing.T) {
	uc := usecase.NewInquiryUsecase(new(MockSessionRepo), newEngineFactory(t), nil)

	assert.Equal(t, "", uc.ValidateField(domain.FieldPhone, "9052088880"))
	assert.Equal(t, inquiry.MsgPhoneInvalid, uc.ValidateField(domain.FieldPhone, "905208"))
}
