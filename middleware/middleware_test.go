package middleware

import (
	"labourlink-backend/config"
	profilehandler "labourlink-backend/lib/profile"
	"labourlink-backend/lib/ratelimit"
	authutils "labourlink-backend/lib/utils/auth-utils"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/models"
	profileapimodels "labourlink-backend/models/api/profile"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func withSubject(userID string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": userID}})
		return ctx.Next()
	}
}

func ok(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusOK)
}

type roleLookup struct {
	profilehandler.Provider
	roles map[string]models.UserRole
	err   error
}

func (r roleLookup) GetRole(userID string) (models.UserRole, error) {
	return r.roles[userID], r.err
}

func useProfiles(t *testing.T, provider profilehandler.Provider) {
	prev := profilehandler.Instance
	profilehandler.Instance = provider
	t.Cleanup(func() { profilehandler.Instance = prev })
}

func TestRoleGuards(t *testing.T) {
	useProfiles(t, roleLookup{roles: map[string]models.UserRole{
		"w1": models.UserRoleWorker,
		"o1": models.UserRoleOwner,
	}})
	app := fiber.New()
	app.Post("/apply", withSubject("w1"), WorkerRole(), ok)
	app.Post("/vacancy/worker", withSubject("w1"), OwnerRole(), ok)
	app.Post("/vacancy/owner", withSubject("o1"), OwnerRole(), ok)
	app.Post("/vacancy/new", withSubject("fresh"), OwnerRole(), ok)
	app.Post("/anon", OwnerRole(), ok)

	cases := []struct {
		path   string
		status int
	}{
		{"/apply", fiber.StatusOK},
		{"/vacancy/worker", fiber.StatusForbidden},
		{"/vacancy/owner", fiber.StatusOK},
		{"/vacancy/new", fiber.StatusForbidden},
		{"/anon", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("POST", tc.path, nil))
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode, tc.path)
	}

	t.Run(`role lookup failure is unavailable`, func(t *testing.T) {
		useProfiles(t, roleLookup{err: errors.New("connection refused")})
		resp, err := app.Test(httptest.NewRequest("POST", "/apply", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestRoleGuardsWithGatewayToken(t *testing.T) {
	prevConf := config.Conf
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	t.Cleanup(func() { config.Conf = prevConf })

	mem := storetest.New(nil)
	profiles := profilehandler.NewInstance(mem.Profiles(), nil, nil)
	useProfiles(t, profiles)

	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Post("/apply", WorkerRole(), ok)
	app.Post("/vacancy", OwnerRole(), ok)

	// gateway tokens carry no role claim
	token, err := authutils.GetTokenWithSecret("test-secret", time.Hour, "new-user", "+919800000009")
	require.NoError(t, err)
	call := func(path string) int {
		req := httptest.NewRequest("POST", path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run(`account without profile is refused`, func(t *testing.T) {
		require.Equal(t, fiber.StatusForbidden, call("/apply"))
		require.Equal(t, fiber.StatusForbidden, call("/vacancy"))
	})
	t.Run(`stored role opens matching routes`, func(t *testing.T) {
		err := profiles.SetupWorker("new-user", "+919800000009", profileapimodels.WorkerData{
			Name:   "Ravi Kumar",
			Age:    27,
			State:  "Gujarat",
			Skills: []string{"Tailoring"},
		})
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, call("/apply"))
		require.Equal(t, fiber.StatusForbidden, call("/vacancy"))
	})
}

func TestRateLimit(t *testing.T) {
	prev := ratelimit.Instance
	ratelimit.Instance = ratelimit.NewMemoryLimiter()
	defer func() { ratelimit.Instance = prev }()

	app := fiber.New()
	app.Post("/report/:user", func(ctx *fiber.Ctx) error {
		return withSubject(ctx.Params("user"))(ctx)
	}, RateLimit("report", 2, time.Hour), ok)

	for n := 0; n < 2; n++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/report/u1", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest("POST", "/report/u1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/report/u2", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/", WithBodyLimit(4), ok)
	req := httptest.NewRequest("POST", "/", strings.NewReader("0123456789"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}
