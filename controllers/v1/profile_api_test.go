package apiv1

import (
	"encoding/json"
	"io"
	"labourlink-backend/config"
	profilehandler "labourlink-backend/lib/profile"
	authutils "labourlink-backend/lib/utils/auth-utils"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/middleware"
	"labourlink-backend/models"
	apimodels "labourlink-backend/models/api"
	profileapimodels "labourlink-backend/models/api/profile"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestProfileSetupRoutes(t *testing.T) {
	prevConf := config.Conf
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	prevProfiles := profilehandler.Instance
	profilehandler.Instance = profilehandler.NewInstance(storetest.New(nil).Profiles(), nil, nil)
	t.Cleanup(func() {
		config.Conf = prevConf
		profilehandler.Instance = prevProfiles
	})

	app := fiber.New()
	app.Use(middleware.AuthorizationRequired())
	InitProfileApiRouters(app)

	call := func(t *testing.T, method, path, userID, body string) (int, []byte) {
		token, err := authutils.GetTokenWithSecret("test-secret", time.Hour, userID, "+919800000009")
		require.NoError(t, err)
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, data
	}

	workerBody := `{"name":"Ravi Kumar","age":27,"state":"Gujarat","district":"Surat","skills":["Tailoring"]}`
	ownerBody := `{"company_name":"Sunrise Textiles","owner_name":"Meera Shah","factory_city":"Surat","latitude":21.17,"longitude":72.83}`

	t.Run(`new account sets up worker profile`, func(t *testing.T) {
		status, _ := call(t, "POST", "/profile/worker", "new-worker", workerBody)
		require.Equal(t, fiber.StatusOK, status)

		status, body := call(t, "GET", "/profile/me", "new-worker", "")
		require.Equal(t, fiber.StatusOK, status)
		var resp struct {
			apimodels.Response
			Data profileapimodels.MeView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Equal(t, models.UserRoleWorker, resp.Data.Role)
		require.Equal(t, "+919800000009", resp.Data.Phone)
	})
	t.Run(`new account sets up owner profile`, func(t *testing.T) {
		status, _ := call(t, "POST", "/profile/owner", "new-owner", ownerBody)
		require.Equal(t, fiber.StatusOK, status)
	})
	t.Run(`role switch is refused`, func(t *testing.T) {
		status, _ := call(t, "POST", "/profile/owner", "new-worker", ownerBody)
		require.Equal(t, fiber.StatusBadRequest, status)
	})
}
