package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(issuer *auth.TokenIssuer, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), HTTPMetrics(m))

	whoami := func(c *gin.Context) {
		a := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": a.UserID, "rol": a.Role, "admin": a.IsAdmin()})
	}
	r.GET("/open", OptionalAuth(issuer), whoami)
	r.GET("/closed", RequireAuth(issuer), whoami)
	r.GET("/admin", RequireAuth(issuer), RequireAdmin(), whoami)
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	m := metrics.New()
	r := newEngine(issuer, m)

	owner, err := issuer.Issue(&models.User{ID: "u-1", Rol: models.RoleOwner})
	require.NoError(t, err)
	admin, err := issuer.Issue(&models.User{ID: "u-2", Rol: models.RoleAdmin})
	require.NoError(t, err)

	rec := get(r, "/open", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"","rol":"","admin":false}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = get(r, "/open", "garbage")
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/closed", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/closed", "garbage").Code)

	rec = get(r, "/closed", owner)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u-1","rol":"dueño","admin":false}`, rec.Body.String())

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", owner).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", admin).Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/admin", "403")))
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
