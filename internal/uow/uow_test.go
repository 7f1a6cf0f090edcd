package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/kirinyoku/holidaze/internal/repository/postgres"
)

// fakeRunner calls fn once per attempt and fails every attempt but the last.
type fakeRunner struct {
	attempts int
	failWith error
}

func (r *fakeRunner) RunTx(ctx context.Context, _ *pgx.TxOptions, fn func(ctx context.Context, tx postgres.DB) error) error {
	for i := 0; i < r.attempts; i++ {
		if err := fn(ctx, nil); err != nil {
			return err
		}
	}
	return r.failWith
}

func TestDoRunsHooksAfterCommit(t *testing.T) {
	u := NewUoW(&fakeRunner{attempts: 1})

	var ran []string
	err := u.Do(context.Background(), func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error {
		after(func(context.Context) { ran = append(ran, "first") })
		after(func(context.Context) { ran = append(ran, "second") })
		assert.Empty(t, ran)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestDoSkipsHooksOnError(t *testing.T) {
	boom := errors.New("boom")
	u := NewUoW(&fakeRunner{attempts: 1, failWith: boom})

	ran := false
	err := u.Do(context.Background(), func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error {
		after(func(context.Context) { ran = true })
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)
}

func TestDoDropsHooksFromRetriedAttempts(t *testing.T) {
	u := NewUoW(&fakeRunner{attempts: 3})

	count := 0
	err := u.Do(context.Background(), func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error {
		after(func(context.Context) { count++ })
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDoHooksOutliveCancelledRequest(t *testing.T) {
	u := NewUoW(&fakeRunner{attempts: 1})
	ctx, cancel := context.WithCancel(context.Background())

	var hookErr error
	err := u.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error {
		after(func(ctx context.Context) { hookErr = ctx.Err() })
		cancel()
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, hookErr)
}
