package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
	require.True(t, IsContextDone(nil))
}
