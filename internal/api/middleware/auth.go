package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"

	// ACCESS_TOKEN_QUERY carries the JWT for clients that cannot set headers (EventSource)
	ACCESS_TOKEN_QUERY = "access_token"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret    string // HS256 shared secret of the identity provider
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string // "jwt" or "apikey"
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	// Parse the authorization header
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := strings.TrimSpace(parts[1])

	switch authType {
	case "bearer":
		claims, err := validateJWT(credentials, cfg)
		if err != nil {
			result.Error = err
			return result
		}
		if claims.Subject == "" {
			result.Error = errors.New("token has no subject")
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_JWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_APIKEY

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	return result
}

// Auth returns a gin middleware for authentication
// It supports both JWT (Bearer token) and API Key authentication
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(cfg, func(AuthResult) error {
		return nil
	})
}

// UserAuth returns a gin middleware that only accepts JWTs identifying a user.
// The token may also be passed in the access_token query parameter.
func UserAuth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(cfg, func(result AuthResult) error {
		if result.AuthType != AUTH_TYPE_JWT || result.AuthSubject == "" {
			return errors.New("a user token is required")
		}
		return nil
	})
}

// APIKeyAuth returns a gin middleware that only accepts API keys
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(cfg, func(result AuthResult) error {
		if result.AuthType != AUTH_TYPE_APIKEY {
			return errors.New("an API key is required")
		}
		return nil
	})
}

func authenticate(cfg AuthConfig, check func(AuthResult) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if token := c.Query(ACCESS_TOKEN_QUERY); token != "" {
				authHeader = "Bearer " + token
			}
		}

		result := Authenticate(authHeader, cfg)
		if result.Success {
			if err := check(result); err != nil {
				result.Success = false
				result.Error = err
			}
		}

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Unauthorized", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiErr})
			return
		}

		// Store authentication info in context
		c.Set(AUTH_TYPE_KEY, result.AuthType)
		if result.Claims != nil {
			c.Set(JWT_CLAIMS_KEY, result.Claims)
			logger.Debug("JWT authentication successful",
				zap.String("path", c.Request.URL.Path),
				zap.String("subject", result.Claims.Subject),
			)
		} else {
			logger.Debug("API Key authentication successful",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
		}
		if result.AuthSubject != "" {
			c.Set(AUTH_SUBJECT_KEY, result.AuthSubject)
		}

		c.Next()
	}
}

// AuthSubject returns the authenticated user id, empty for API key callers
func AuthSubject(c *gin.Context) string {
	subject, _ := c.Get(AUTH_SUBJECT_KEY)
	s, _ := subject.(string)
	return s
}

// AuthType returns how the caller authenticated
func AuthType(c *gin.Context) string {
	authType, _ := c.Get(AUTH_TYPE_KEY)
	s, _ := authType.(string)
	return s
}

// validateJWT validates a JWT signed with the shared secret (HS256) or the RSA key (RS256)
func validateJWT(tokenString string, cfg AuthConfig) (*jwt.RegisteredClaims, error) {
	if cfg.JWTSecret == "" && cfg.JWTPublicKey == "" {
		return nil, errors.New("JWT verification key not configured")
	}

	var publicKey *rsa.PublicKey
	if cfg.JWTPublicKey != "" {
		key, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		publicKey = key
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if cfg.JWTSecret == "" {
				return nil, errors.New("HMAC tokens are not accepted")
			}
			return []byte(cfg.JWTSecret), nil
		case *jwt.SigningMethodRSA:
			if publicKey == nil {
				return nil, errors.New("RSA tokens are not accepted")
			}
			return publicKey, nil
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	}, jwt.WithValidMethods([]string{"HS256", "RS256"}))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	now := time.Now()

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return nil, errors.New("token has expired")
	}

	if claims.NotBefore != nil && claims.NotBefore.After(now) {
		return nil, errors.New("token not yet valid")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// validateAPIKey validates an API key
func validateAPIKey(apiKey string, keys []string) error {
	if len(keys) == 0 {
		return errors.New("no API keys configured")
	}

	for _, key := range keys {
		if key != "" && key == apiKey {
			return nil
		}
	}

	return errors.New("invalid API key")
}
