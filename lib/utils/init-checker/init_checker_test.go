package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface {
	Do()
}

func TestCheckInit(t *testing.T) {
	t.Run(`initialized dependencies pass`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("store", struct{}{}, "name", "value")
		})
	})
	t.Run(`nil interface panics with its name`, func(t *testing.T) {
		var p provider
		require.PanicsWithValue(t, "notification dependency not initialized", func() {
			CheckInit("notification", p)
		})
	})
	t.Run(`odd arguments panic`, func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("store")
		})
	})
}
