package signal_test

import (
	"context"
	"syscall"
	"testing"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/os/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyContextStop(t *testing.T) {
	t.Parallel()

	ctx, stop := signal.NotifyContext(context.Background())
	require.NoError(t, ctx.Err())

	stop()
	stop()

	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, context.Canceled, context.Cause(ctx))
}

func TestNotifyContextFollowsParent(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())

	ctx, stop := signal.NotifyContext(parent)
	defer stop()

	cancel()

	<-ctx.Done()
	assert.True(t, errors.IsContextCanceled(ctx.Err()))
}

func TestContextCanceledCause(t *testing.T) {
	t.Parallel()

	cause := signal.NewContextCanceledCause(syscall.SIGINT)

	require.ErrorIs(t, cause, context.Canceled)
	assert.Equal(t, "received signal interrupt", cause.Error())
	assert.Equal(t, context.Canceled.Error(), signal.ContextCanceledCause{}.Error())
}
