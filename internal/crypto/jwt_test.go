package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueToken(t *testing.T) {
	token, err := IssueToken("ci", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken() returned empty string")
	}
}

func TestIssueTokenEmptySecret(t *testing.T) {
	_, err := IssueToken("ci", "", time.Hour)
	if !errors.Is(err, ErrEmptySecret) {
		t.Errorf("IssueToken() error = %v, want ErrEmptySecret", err)
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := IssueToken("frontend", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "frontend" {
		t.Errorf("ValidateToken() Subject = %q, want %q", claims.Subject, "frontend")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("frontend", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := IssueToken("frontend", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateTokenClaimMismatch(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
	}{
		{name: "wrong issuer", issuer: "wrong-issuer", audience: TokenAudience},
		{name: "wrong audience", issuer: TokenIssuer, audience: "wrong-audience"},
	}

	secret := "test-secret"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    tt.issuer,
					Audience:  jwt.ClaimStrings{tt.audience},
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					IssuedAt:  jwt.NewNumericDate(time.Now()),
				},
			}
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			tokenString, err := token.SignedString([]byte(secret))
			if err != nil {
				t.Fatalf("SignedString() unexpected error: %v", err)
			}

			if _, err := ValidateToken(tokenString, secret); err == nil {
				t.Errorf("ValidateToken() expected error for %s", tt.name)
			}
		})
	}
}
