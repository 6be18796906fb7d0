package botnotify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSendCounterDrift(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	SendCounterDrift(srv.URL, "vac-1", 2, 3, 1, true, logrus.NewEntry(logrus.New()))
	require.Equal(t, "counter_drift", got["event"])
	require.Equal(t, "vac-1", got["vacancy_id"])
	require.Equal(t, float64(3), got["filled_count"])
	require.Equal(t, true, got["fixed"])
}
