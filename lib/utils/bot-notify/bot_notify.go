package botnotify

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var client = &http.Client{Timeout: 10 * time.Second}

// SendCounterDrift posts a counter drift alert to the operator webhook.
func SendCounterDrift(addr, vacancyID string, workerCount, filledCount, accepted int, fixed bool, logger *logrus.Entry) {
	if addr == "" {
		return
	}
	payload := fmt.Sprintf(
		`{"event":"counter_drift","vacancy_id":%q,"worker_count":%d,"filled_count":%d,"accepted":%d,"fixed":%t}`,
		vacancyID, workerCount, filledCount, accepted, fixed)
	resp, err := client.Post(addr, "application/json", strings.NewReader(payload))
	if err != nil {
		logger.WithError(err).Error("error sending counter drift notification")
		return
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		logger.WithField("status", resp.StatusCode).Warn("counter drift notification was rejected")
	}
}
