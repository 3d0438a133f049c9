package memory

import (
	"context"
	"testing"
	"time"

	"go-landing-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	domain.InquiryEngine
	closed int
}

func (f *fakeEngine) Close() { f.closed++ }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newSession(id string) (*domain.InquirySession, *fakeEngine) {
	eng := &fakeEngine{}
	return &domain.InquirySession{ID: id, Engine: eng}, eng
}

func TestInquirySessionRepo_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	repo := newInquirySessionRepo(time.Minute, 0, clock.Now)
	s, eng := newSession("abc")

	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, repo.Delete(ctx, "abc"))
	assert.Equal(t, 1, eng.closed)

	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "abc"), domain.ErrSessionNotFound)
}

func TestInquirySessionRepo_GetRefreshesIdleTimer(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	repo := newInquirySessionRepo(time.Minute, 0, clock.Now)
	s, _ := newSession("abc")
	require.NoError(t, repo.Save(ctx, s))

	clock.Advance(50 * time.Second)
	_, err := repo.Get(ctx, "abc")
	require.NoError(t, err)

	clock.Advance(50 * time.Second)
	_, err = repo.Get(ctx, "abc")
	assert.NoError(t, err)
}

func TestInquirySessionRepo_ExpiredSessionIsClosed(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	repo := newInquirySessionRepo(time.Minute, 0, clock.Now)
	s, eng := newSession("abc")
	require.NoError(t, repo.Save(ctx, s))

	clock.Advance(2 * time.Minute)
	_, err := repo.Get(ctx, "abc")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 1, eng.closed)
}

func TestInquirySessionRepo_EvictExpired(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	repo := newInquirySessionRepo(time.Minute, 0, clock.Now)
	old, oldEng := newSession("old")
	require.NoError(t, repo.Save(ctx, old))

	clock.Advance(45 * time.Second)
	fresh, freshEng := newSession("fresh")
	require.NoError(t, repo.Save(ctx, fresh))

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, repo.EvictExpired())
	assert.Equal(t, 1, oldEng.closed)
	assert.Zero(t, freshEng.closed)

	_, err := repo.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestInquirySessionRepo_Capacity(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	repo := newInquirySessionRepo(time.Minute, 2, clock.Now)

	a, _ := newSession("a")
	b, _ := newSession("b")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	c, cEng := newSession("c")
	assert.ErrorIs(t, repo.Save(ctx, c), domain.ErrSessionLimit)
	assert.Zero(t, cEng.closed, "rejected session belongs to the caller")
	_, err := repo.Get(ctx, "c")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// re-saving a known id is not a new session
	assert.NoError(t, repo.Save(ctx, a))
}

func TestInquirySessionRepo_CapacityEvictsExpiredFirst(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	repo := newInquirySessionRepo(time.Minute, 2, clock.Now)

	old, oldEng := newSession("old")
	require.NoError(t, repo.Save(ctx, old))
	clock.Advance(45 * time.Second)
	fresh, _ := newSession("fresh")
	require.NoError(t, repo.Save(ctx, fresh))

	clock.Advance(30 * time.Second)
	next, _ := newSession("next")
	require.NoError(t, repo.Save(ctx, next))
	assert.Equal(t, 1, oldEng.closed)

	_, err := repo.Get(ctx, "next")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
