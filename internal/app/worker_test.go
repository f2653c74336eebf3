package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-workboard/internal/app"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeMarker struct {
	calls  int
	cancel context.CancelFunc
	err    error
}

func (f *fakeMarker) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	f.calls++
	if f.calls == 2 {
		f.cancel()
	}
	return 1, f.err
}

func TestSweepOverdue(t *testing.T) {
	t.Run("runs immediately and on each tick", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		marker := &fakeMarker{cancel: cancel}

		app.SweepOverdue(ctx, marker, zap.NewNop(), time.Millisecond)

		assert.GreaterOrEqual(t, marker.calls, 2)
	})

	t.Run("keeps going after an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		marker := &fakeMarker{cancel: cancel, err: errors.New("db down")}

		app.SweepOverdue(ctx, marker, zap.NewNop(), time.Millisecond)

		assert.GreaterOrEqual(t, marker.calls, 2)
	})
}
