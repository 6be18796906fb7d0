package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	out := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagMethod, TagPath, TagStatus, "unknown"}}))
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNotFound)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	require.Equal(t, "GET", entry[TagMethod])
	require.Equal(t, "/ping", entry[TagPath])
	require.Equal(t, float64(fiber.StatusNotFound), entry[TagStatus])
	require.Equal(t, "warning", entry["level"])
	require.NotContains(t, entry, "unknown")
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short"))
	long := strings.Repeat("a", maxBodyLen+10)
	require.Len(t, truncate(long), maxBodyLen+3)
}
