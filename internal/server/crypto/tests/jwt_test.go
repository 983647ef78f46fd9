package tests

import (
	"testing"
	"time"

	crypt "github.com/acm-uic/acm-catalog/internal/server/crypto"
	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken_Success(t *testing.T) {
	t.Parallel()
	cfg := crypt.JWTConfig{
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  30 * 24 * time.Hour,
	}

	userID := "8bd4e27a-70b4-4ff4-9f3e-9e1de8cfa111"

	tokenStr, err := crypt.NewAccessToken(userID, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected non-empty token string")
	}

	// Парсим и валидируем токен
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			// Проверяем алгоритм
			if token.Method != jwt.SigningMethodHS256 {
				t.Fatalf("unexpected signing method: %v", token.Method)
			}
			return []byte(cfg.SigningKey), nil
		},
	)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	if !parsed.Valid {
		t.Fatal("token is not valid")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("claims type assertion failed")
	}

	if claims.Subject != userID {
		t.Fatalf("expected subject %q, got %q", userID, claims.Subject)
	}

	// Только sub/iat/exp, никаких iss/aud
	if claims.Issuer != "" {
		t.Fatalf("expected empty issuer, got %q", claims.Issuer)
	}
	if len(claims.Audience) != 0 {
		t.Fatalf("expected empty audience, got %v", claims.Audience)
	}

	if claims.IssuedAt == nil {
		t.Fatal("IssuedAt is nil")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("ExpiresAt is nil")
	}
	if time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatal("token already expired")
	}

	// exp - iat примерно равно AccessTTL
	ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if ttl != cfg.AccessTTL {
		t.Fatalf("expected ttl %v, got %v", cfg.AccessTTL, ttl)
	}
}

func TestNewAccessToken_WrongKeyDoesNotValidate(t *testing.T) {
	cfg := crypt.JWTConfig{
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  time.Minute,
	}

	tokenStr, err := crypt.NewAccessToken("user", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Пытаемся валидировать НЕ тем ключом — должно упасть.
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			return []byte("completely-different-key-123456789"), nil
		},
	)

	if err == nil && parsed != nil && parsed.Valid {
		t.Fatal("expected token to be invalid with different key")
	}
}

func TestNewAccessToken_ExpirationRespected(t *testing.T) {
	cfg := crypt.JWTConfig{
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  -1 * time.Minute, // уже истёк
	}

	tokenStr, err := crypt.NewAccessToken("user", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			return []byte(cfg.SigningKey), nil
		},
	)

	// jwt.ParseWithClaims вернёт ошибку по exp
	if err == nil && parsed.Valid {
		t.Fatal("expected token to be expired")
	}
}
