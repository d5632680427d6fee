package auth

import (
	"testing"
	"time"
)

func testJWTService(d time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		Secret:        "test-secret",
		Issuer:        "uamd",
		TokenDuration: d,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	user := NewUser("alice", "alice@example.com", "hashedpass", RoleAdmin, nil)
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user_id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected role ADMIN, got %s", claims.Role)
	}
	if !claims.IsAdmin() {
		t.Fatal("expected admin claims")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testJWTService(time.Hour)

	user := NewUser("alice", "alice@example.com", "hashedpass", RoleUser, nil)
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	forged := NewJWTService(JWTConfig{Secret: "other-secret", Issuer: "uamd", TokenDuration: time.Hour})
	_, err = forged.ValidateToken(token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	user := NewUser("alice", "alice@example.com", "hashedpass", RoleUser, nil)
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got: %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testJWTService(time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.ValidateToken(token); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got: %v", token, err)
		}
	}
}

func TestGetTokenExpiry(t *testing.T) {
	svc := testJWTService(time.Hour)

	user := NewUser("alice", "alice@example.com", "hashedpass", RoleUser, nil)
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	expiry, err := svc.GetTokenExpiry(token)
	if err != nil {
		t.Fatalf("failed to get token expiry: %v", err)
	}

	remaining := time.Until(expiry)
	if remaining <= 50*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in    string
		role  Role
		valid bool
	}{
		{"ADMIN", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"Admin", RoleAdmin, true},
		{"USER", RoleUser, true},
		{"user", RoleUser, true},
		{"root", "", false},
		{"", "", false},
		{"SUPERADMIN", "", false},
	}

	for _, tc := range cases {
		role, ok := NormalizeRole(tc.in)
		if ok != tc.valid {
			t.Fatalf("NormalizeRole(%q): expected valid=%v, got %v", tc.in, tc.valid, ok)
		}
		if role != tc.role {
			t.Fatalf("NormalizeRole(%q): expected %q, got %q", tc.in, tc.role, role)
		}
	}
}
