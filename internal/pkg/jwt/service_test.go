package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, secret string, method jwtlib.SigningMethod, c Claims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(method, c).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return signed
}

func accessClaims(clientID uuid.UUID, issued, expires time.Time) Claims {
	return Claims{
		ClientID:  clientID,
		ClientKey: "analytics-gateway",
		TokenType: TokenTypeAccess,
		IssuedAt:  issued.UTC(),
		ExpiredAt: expires.UTC(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(issued.UTC()),
			ExpiresAt: jwtlib.NewNumericDate(expires.UTC()),
			Subject:   clientID.String(),
		},
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	svc := NewHMACService(testSecret)
	clientID := uuid.New()
	now := time.Now()

	token := mintToken(t, testSecret, jwtlib.SigningMethodHS256, accessClaims(clientID, now, now.Add(time.Hour)))

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.ClientID != clientID {
		t.Fatalf("client id = %s, want %s", claims.ClientID, clientID)
	}
	if claims.ClientKey != "analytics-gateway" {
		t.Fatalf("client key = %s", claims.ClientKey)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type = %s", claims.TokenType)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewHMACService(testSecret)
	now := time.Now()

	token := mintToken(t, testSecret, jwtlib.SigningMethodHS256, accessClaims(uuid.New(), now.Add(-2*time.Hour), now.Add(-time.Hour)))

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewHMACService(testSecret)
	now := time.Now()

	token := mintToken(t, "another-secret", jwtlib.SigningMethodHS256, accessClaims(uuid.New(), now, now.Add(time.Hour)))

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_RejectsOtherSigningMethods(t *testing.T) {
	svc := NewHMACService(testSecret)
	now := time.Now()

	token := mintToken(t, testSecret, jwtlib.SigningMethodHS384, accessClaims(uuid.New(), now, now.Add(time.Hour)))

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_RejectsNonAccessType(t *testing.T) {
	svc := NewHMACService(testSecret)
	now := time.Now()

	c := accessClaims(uuid.New(), now, now.Add(time.Hour))
	c.TokenType = "refresh"
	token := mintToken(t, testSecret, jwtlib.SigningMethodHS256, c)

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
