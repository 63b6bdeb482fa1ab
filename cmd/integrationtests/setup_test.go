package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"player-auction/internal/cli"
	"player-auction/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter wires the full application on in-memory storage for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := cli.NewApp(&config.Config{
		Server:  config.ServerConfig{Address: ":0", ShutdownTimeout: time.Second},
		Log:     config.LogConfig{Level: "info"},
		Storage: config.StorageConfig{Type: config.StorageMemory},
		Auth:    config.AuthConfig{JWTSecret: "integration-secret", TokenTTL: time.Hour, BcryptCost: 4},
		Auction: config.AuctionConfig{MinBasePrice: 2_000_000, MaxBasePrice: 20_000_000},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app.Router()
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// registerAndLoginAdmin creates an admin account and returns its token
func registerAndLoginAdmin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	creds := map[string]any{"username": username, "password": "gavel-" + username}

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/admin/auth", withAction(creds, "register"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/admin/auth", withAction(creds, "login"), "")
	require.Equal(t, http.StatusOK, w.Code)
	return tokenFrom(t, resp)
}

// registerAndLoginBuyer creates a buyer account for team and returns its token
func registerAndLoginBuyer(t *testing.T, router *gin.Engine, username, team string) string {
	t.Helper()

	creds := map[string]any{"username": username, "password": "bid-" + username}

	reg := withAction(creds, "register")
	reg["teamName"] = team
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/buyer/auth", reg, "")
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/buyer/auth", withAction(creds, "login"), "")
	require.Equal(t, http.StatusOK, w.Code)
	return tokenFrom(t, resp)
}

func withAction(creds map[string]any, action string) map[string]any {
	out := map[string]any{"action": action}
	for k, v := range creds {
		out[k] = v
	}
	return out
}

func tokenFrom(t *testing.T, resp map[string]any) string {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object")
	token, ok := data["token"].(string)
	require.True(t, ok, "response has no token")
	require.NotEmpty(t, token)
	return token
}
