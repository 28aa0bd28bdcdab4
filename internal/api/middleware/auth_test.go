package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/api/middleware"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signHS256(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(subject string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func newAuthRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject":   middleware.AuthSubject(c),
			"auth_type": middleware.AuthType(c),
		})
	})
	return router
}

func doGet(router http.Handler, target string, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	cfg := middleware.AuthConfig{JWTSecret: testSecret, APIKeys: []string{"key-1", "key-2"}}

	tests := []struct {
		name        string
		header      func(t *testing.T) string
		wantSuccess bool
		wantType    string
		wantSubject string
	}{
		{
			name:        "valid HS256 bearer token",
			header:      func(t *testing.T) string { return "Bearer " + signHS256(t, testSecret, validClaims("user-1")) },
			wantSuccess: true,
			wantType:    middleware.AUTH_TYPE_JWT,
			wantSubject: "user-1",
		},
		{
			name:        "scheme is case insensitive",
			header:      func(t *testing.T) string { return "bearer " + signHS256(t, testSecret, validClaims("user-1")) },
			wantSuccess: true,
			wantType:    middleware.AUTH_TYPE_JWT,
			wantSubject: "user-1",
		},
		{
			name:        "valid API key",
			header:      func(t *testing.T) string { return "ApiKey key-2" },
			wantSuccess: true,
			wantType:    middleware.AUTH_TYPE_APIKEY,
		},
		{
			name:   "missing header",
			header: func(t *testing.T) string { return "" },
		},
		{
			name:   "malformed header",
			header: func(t *testing.T) string { return "token-without-scheme" },
		},
		{
			name:   "unsupported scheme",
			header: func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
		},
		{
			name:   "wrong secret",
			header: func(t *testing.T) string { return "Bearer " + signHS256(t, "other-secret", validClaims("user-1")) },
		},
		{
			name: "expired token",
			header: func(t *testing.T) string {
				claims := validClaims("user-1")
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + signHS256(t, testSecret, claims)
			},
		},
		{
			name:   "token without subject",
			header: func(t *testing.T) string { return "Bearer " + signHS256(t, testSecret, validClaims("")) },
		},
		{
			name:   "unknown API key",
			header: func(t *testing.T) string { return "ApiKey nope" },
		},
		{
			name: "unsigned token",
			header: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("user-1"))
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return "Bearer " + signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header(t), cfg)
			assert.Equal(t, tt.wantSuccess, result.Success)
			if tt.wantSuccess {
				assert.NoError(t, result.Error)
				assert.Equal(t, tt.wantType, result.AuthType)
				assert.Equal(t, tt.wantSubject, result.AuthSubject)
			} else {
				assert.Error(t, result.Error)
			}
		})
	}
}

func TestAuthenticate_NoVerificationKey(t *testing.T) {
	token := signHS256(t, testSecret, validClaims("user-1"))
	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "not configured")
}

func TestUserAuth(t *testing.T) {
	cfg := middleware.AuthConfig{JWTSecret: testSecret, APIKeys: []string{"key-1"}}
	router := newAuthRouter(middleware.UserAuth(cfg))
	token := signHS256(t, testSecret, validClaims("user-1"))

	t.Run("header token sets subject", func(t *testing.T) {
		rec := doGet(router, "/protected", "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "user-1", body["subject"])
		assert.Equal(t, middleware.AUTH_TYPE_JWT, body["auth_type"])
	})

	t.Run("access_token query parameter", func(t *testing.T) {
		rec := doGet(router, "/protected?access_token="+token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-1")
	})

	t.Run("API key is rejected", func(t *testing.T) {
		rec := doGet(router, "/protected", "ApiKey key-1")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		rec := doGet(router, "/protected", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body.Error.Code)
		assert.Equal(t, "Unauthorized", body.Error.Message)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	cfg := middleware.AuthConfig{JWTSecret: testSecret, APIKeys: []string{"key-1"}}
	router := newAuthRouter(middleware.APIKeyAuth(cfg))

	t.Run("API key accepted", func(t *testing.T) {
		rec := doGet(router, "/protected", "ApiKey key-1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), middleware.AUTH_TYPE_APIKEY)
	})

	t.Run("user token rejected", func(t *testing.T) {
		rec := doGet(router, "/protected", "Bearer "+signHS256(t, testSecret, validClaims("user-1")))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_AcceptsEither(t *testing.T) {
	cfg := middleware.AuthConfig{JWTSecret: testSecret, APIKeys: []string{"key-1"}}
	router := newAuthRouter(middleware.Auth(cfg))

	assert.Equal(t, http.StatusOK, doGet(router, "/protected", "ApiKey key-1").Code)
	assert.Equal(t, http.StatusOK, doGet(router, "/protected", "Bearer "+signHS256(t, testSecret, validClaims("user-1"))).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/protected", "ApiKey wrong").Code)
}
