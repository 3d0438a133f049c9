package inquiry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-landing-backend/internal/domain"
	"go-landing-backend/internal/inquiry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, message string) {
	m.Called(ctx, message)
}

type stubGeolocator struct {
	err   error
	calls int
}

func (g *stubGeolocator) CurrentPosition(_ context.Context, onSuccess func(domain.Position), onError func(error)) {
	g.calls++
	if g.err != nil {
		onError(g.err)
		return
	}
	onSuccess(domain.Position{Latitude: 17.385, Longitude: 78.4867})
}

var fixedNow = time.Date(2024, 11, 1, 10, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*inquiry.Engine, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	e := inquiry.NewEngine(inquiry.Config{
		Scheduler:    sched,
		Now:          func() time.Time { return fixedNow },
		NewReference: func() string { return "ref-1" },
	})
	t.Cleanup(e.Close)
	return e, sched
}

func fillValid(e *inquiry.Engine) {
	e.OnFieldChange(domain.FieldName, "Jane Doe")
	e.OnFieldChange(domain.FieldPhone, "+91 90520 88880")
	e.OnFieldChange(domain.FieldType, string(domain.InquiryCorporate))
}

func TestEngine_FreshState(t *testing.T) {
	e, _ := newTestEngine(t)

	snap := e.Snapshot()
	assert.Equal(t, domain.StatusIdle, snap.Status)
	assert.Equal(t, domain.FormState{}, snap.Form)
	assert.Empty(t, snap.Errors)
	assert.Empty(t, snap.Touched)
	assert.False(t, snap.IsLocating)
	assert.False(t, snap.LocationDetected)
	assert.Nil(t, snap.Receipt)
}

func TestEngine_ChangeBeforeBlurDoesNotValidate(t *testing.T) {
	e, _ := newTestEngine(t)

	e.OnFieldChange(domain.FieldPhone, "905")

	snap := e.Snapshot()
	assert.Equal(t, "905", snap.Form.Phone)
	assert.Empty(t, snap.Errors)
}

func TestEngine_ChangeAfterBlurRevalidates(t *testing.T) {
	e, _ := newTestEngine(t)

	e.OnFieldBlur(domain.FieldPhone, "905")
	assert.Equal(t, inquiry.MsgPhoneInvalid, e.Snapshot().VisibleErrors[domain.FieldPhone])

	e.OnFieldChange(domain.FieldPhone, "9052088880")
	snap := e.Snapshot()
	assert.NotContains(t, snap.Errors, domain.FieldPhone)

	e.OnFieldChange(domain.FieldPhone, "")
	assert.Equal(t, inquiry.MsgPhoneRequired, e.Snapshot().Errors[domain.FieldPhone])
}

func TestEngine_ChangeOnlyRevalidatesThatField(t *testing.T) {
	e, _ := newTestEngine(t)

	e.OnFieldBlur(domain.FieldName, "")
	e.OnFieldBlur(domain.FieldPhone, "")
	e.OnFieldChange(domain.FieldPhone, "9052088880")

	snap := e.Snapshot()
	assert.Equal(t, inquiry.MsgNameRequired, snap.Errors[domain.FieldName])
	assert.NotContains(t, snap.Errors, domain.FieldPhone)
}

func TestEngine_BlurIsIdempotent(t *testing.T) {
	once, _ := newTestEngine(t)
	twice, _ := newTestEngine(t)

	once.OnFieldBlur(domain.FieldEmail, "not-an-email")
	twice.OnFieldBlur(domain.FieldEmail, "not-an-email")
	twice.OnFieldBlur(domain.FieldEmail, "not-an-email")

	if diff := cmp.Diff(once.Snapshot(), twice.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-once +twice):\n%s", diff)
	}
}

func TestEngine_ErrorVisibleOnlyWhenTouched(t *testing.T) {
	e, _ := newTestEngine(t)

	e.OnFieldBlur(domain.FieldName, "")
	e.OnFieldChange(domain.FieldEmail, "bad")

	snap := e.Snapshot()
	assert.Equal(t, map[domain.Field]string{domain.FieldName: inquiry.MsgNameRequired}, snap.VisibleErrors)
	assert.Equal(t, []domain.Field{domain.FieldName}, snap.Touched)
}

func TestEngine_SubmitEmptyForm(t *testing.T) {
	e, sched := newTestEngine(t)

	outcome := e.Submit()

	assert.Equal(t, domain.SubmitInvalid, outcome)
	snap := e.Snapshot()
	assert.Equal(t, domain.StatusIdle, snap.Status)
	assert.Equal(t, domain.AllFields, snap.Touched)
	assert.Equal(t, map[domain.Field]string{
		domain.FieldName:  inquiry.MsgNameRequired,
		domain.FieldPhone: inquiry.MsgPhoneRequired,
		domain.FieldType:  inquiry.MsgTypeRequired,
	}, snap.Errors)
	assert.Equal(t, snap.Errors, snap.VisibleErrors)
	assert.Empty(t, sched.Pending())
}

func TestEngine_SubmitValidFormCompletesAfterDelay(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)
	before := e.Snapshot().Form

	outcome := e.Submit()

	require.Equal(t, domain.SubmitAccepted, outcome)
	assert.Equal(t, domain.StatusSubmitting, e.Snapshot().Status)
	assert.Equal(t, []time.Duration{inquiry.DefaultSubmitDelay}, sched.Pending())

	require.Equal(t, 1, sched.FireAll())

	snap := e.Snapshot()
	assert.Equal(t, domain.StatusSuccess, snap.Status)
	assert.Equal(t, before, snap.Form)
	require.NotNil(t, snap.Receipt)
	assert.Equal(t, "ref-1", snap.Receipt.Reference)
	assert.Equal(t, fixedNow, snap.Receipt.SubmittedAt)
	assert.Equal(t, "Jane Doe", snap.Receipt.Summary.Name)
}

func TestEngine_ReceiptIsSanitized(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)
	e.OnFieldChange(domain.FieldMessage, "<script>alert(1)</script>Need 500 bags")

	require.Equal(t, domain.SubmitAccepted, e.Submit())
	sched.FireAll()

	snap := e.Snapshot()
	assert.Equal(t, "<script>alert(1)</script>Need 500 bags", snap.Form.Message)
	assert.Equal(t, "Need 500 bags", snap.Receipt.Summary.Message)
}

func TestEngine_SubmitIgnoredWhileNotIdle(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)

	require.Equal(t, domain.SubmitAccepted, e.Submit())
	assert.Equal(t, domain.SubmitIgnored, e.Submit())
	assert.Len(t, sched.Pending(), 1)

	sched.FireAll()
	assert.Equal(t, domain.SubmitIgnored, e.Submit())
	assert.Equal(t, domain.StatusSuccess, e.Snapshot().Status)
}

func TestEngine_FieldEditsAllowedWhileSubmitting(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)
	require.Equal(t, domain.SubmitAccepted, e.Submit())

	e.OnFieldChange(domain.FieldMessage, "one more thing")
	sched.FireAll()

	snap := e.Snapshot()
	assert.Equal(t, domain.StatusSuccess, snap.Status)
	assert.Equal(t, "one more thing", snap.Form.Message)
}

func TestEngine_FormFrozenAfterSuccess(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)
	require.Equal(t, domain.SubmitAccepted, e.Submit())
	sched.FireAll()
	before := e.Snapshot()

	e.OnFieldChange(domain.FieldName, "")
	e.OnFieldBlur(domain.FieldName, "")
	e.OnFieldBlur(domain.FieldPhone, "123")

	if diff := cmp.Diff(before, e.Snapshot()); diff != "" {
		t.Fatalf("snapshot changed after success (-before +after):\n%s", diff)
	}

	require.NoError(t, e.Reset())
	e.OnFieldChange(domain.FieldName, "Ravi")
	assert.Equal(t, "Ravi", e.Snapshot().Form.Name)
}

func TestEngine_ResetFromSuccess(t *testing.T) {
	e, sched := newTestEngine(t)
	geo := &stubGeolocator{}
	fillValid(e)
	e.OnFieldBlur(domain.FieldName, "Jane Doe")
	require.NoError(t, e.LocateMe(context.Background(), geo))
	sched.FireAll()
	require.True(t, e.Snapshot().LocationDetected)

	require.Equal(t, domain.SubmitAccepted, e.Submit())
	sched.FireAll()
	require.NoError(t, e.Reset())

	want := domain.InquirySnapshot{
		Form:          domain.FormState{},
		Errors:        map[domain.Field]string{},
		VisibleErrors: map[domain.Field]string{},
		Touched:       []domain.Field{},
		Status:        domain.StatusIdle,
	}
	if diff := cmp.Diff(want, e.Snapshot()); diff != "" {
		t.Fatalf("snapshot after reset (-want +got):\n%s", diff)
	}
}

func TestEngine_ResetNotAllowedOutsideSuccess(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.ErrorIs(t, e.Reset(), domain.ErrResetNotAllowed)

	fillValid(e)
	require.Equal(t, domain.SubmitAccepted, e.Submit())
	assert.ErrorIs(t, e.Reset(), domain.ErrResetNotAllowed)
	assert.Equal(t, domain.StatusSubmitting, e.Snapshot().Status)
}

func TestEngine_StaleCompletionAfterReset(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)

	require.Equal(t, domain.SubmitAccepted, e.Submit())
	sched.FireAll()
	require.NoError(t, e.Reset())

	fillValid(e)
	require.Equal(t, domain.SubmitAccepted, e.Submit())

	// re-deliver the first submission's completion
	sched.Timer(0).fn()
	assert.Equal(t, domain.StatusSubmitting, e.Snapshot().Status)

	sched.FireAll()
	assert.Equal(t, domain.StatusSuccess, e.Snapshot().Status)
}

func TestEngine_LocateMeSuccess(t *testing.T) {
	e, sched := newTestEngine(t)
	geo := &stubGeolocator{}

	require.NoError(t, e.LocateMe(context.Background(), geo))

	snap := e.Snapshot()
	assert.True(t, snap.IsLocating)
	assert.Empty(t, snap.Form.Location)
	assert.Equal(t, []time.Duration{inquiry.DefaultLocateDelay}, sched.Pending())

	sched.FireAll()

	snap = e.Snapshot()
	assert.Equal(t, inquiry.DefaultResolvedPlace, snap.Form.Location)
	assert.False(t, snap.IsLocating)
	assert.True(t, snap.LocationDetected)
	assert.Empty(t, snap.Notice)
}

func TestEngine_LocateMeFailure(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, inquiry.LocationNotice).Once()
	e := inquiry.NewEngine(inquiry.Config{Scheduler: &manualScheduler{}, Notifier: notifier})
	t.Cleanup(e.Close)
	e.OnFieldChange(domain.FieldLocation, "Miyapur")

	err := e.LocateMe(context.Background(), &stubGeolocator{err: errors.New("User denied Geolocation")})

	require.NoError(t, err)
	snap := e.Snapshot()
	assert.False(t, snap.IsLocating)
	assert.False(t, snap.LocationDetected)
	assert.Equal(t, "Miyapur", snap.Form.Location)
	assert.Equal(t, inquiry.LocationNotice, snap.Notice)
	assert.NotContains(t, snap.Errors, domain.FieldLocation)
	notifier.AssertExpectations(t)
}

func TestEngine_LocateMeWithoutGeolocator(t *testing.T) {
	e, _ := newTestEngine(t)

	require.NoError(t, e.LocateMe(context.Background(), nil))

	snap := e.Snapshot()
	assert.False(t, snap.IsLocating)
	assert.Equal(t, inquiry.LocationNotice, snap.Notice)
}

func TestEngine_LocateMeSingleFlight(t *testing.T) {
	e, sched := newTestEngine(t)
	geo := &stubGeolocator{}

	require.NoError(t, e.LocateMe(context.Background(), geo))
	assert.ErrorIs(t, e.LocateMe(context.Background(), geo), domain.ErrAlreadyLocating)
	assert.Equal(t, 1, geo.calls)
	assert.Len(t, sched.Pending(), 1)

	sched.FireAll()
	assert.True(t, e.Snapshot().LocationDetected)

	// a finished lookup can be retried
	require.NoError(t, e.LocateMe(context.Background(), geo))
	assert.Equal(t, 2, geo.calls)
}

func TestEngine_RetryClearsNotice(t *testing.T) {
	e, sched := newTestEngine(t)

	require.NoError(t, e.LocateMe(context.Background(), &stubGeolocator{err: domain.ErrLocationUnavailable}))
	require.Equal(t, inquiry.LocationNotice, e.Snapshot().Notice)

	require.NoError(t, e.LocateMe(context.Background(), &stubGeolocator{}))
	assert.Empty(t, e.Snapshot().Notice)
	sched.FireAll()
	assert.True(t, e.Snapshot().LocationDetected)
}

func TestEngine_ResetDropsPendingLookup(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)
	require.Equal(t, domain.SubmitAccepted, e.Submit())
	sched.FireAll()

	require.NoError(t, e.LocateMe(context.Background(), &stubGeolocator{}))
	require.NoError(t, e.Reset())

	assert.Zero(t, sched.FireAll())
	sched.Timer(1).fn()

	snap := e.Snapshot()
	assert.Empty(t, snap.Form.Location)
	assert.False(t, snap.LocationDetected)
	assert.False(t, snap.IsLocating)
}

func TestEngine_CloseDropsCompletions(t *testing.T) {
	e, sched := newTestEngine(t)
	fillValid(e)
	require.Equal(t, domain.SubmitAccepted, e.Submit())

	e.Close()
	sched.Timer(0).fn()

	assert.Equal(t, domain.StatusSubmitting, e.Snapshot().Status)
	assert.Equal(t, domain.SubmitIgnored, e.Submit())
}

func TestEngine_SystemScheduler(t *testing.T) {
	e := inquiry.NewEngine(inquiry.Config{
		SubmitDelay:   5 * time.Millisecond,
		LocateDelay:   5 * time.Millisecond,
		ResolvedPlace: "Miyapur, Hyderabad",
	})
	defer e.Close()
	fillValid(e)

	require.Equal(t, domain.SubmitAccepted, e.Submit())
	require.NoError(t, e.LocateMe(context.Background(), &stubGeolocator{}))

	require.Eventually(t, func() bool {
		snap := e.Snapshot()
		return snap.Status == domain.StatusSuccess && snap.LocationDetected
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Miyapur, Hyderabad", e.Snapshot().Form.Location)
}
