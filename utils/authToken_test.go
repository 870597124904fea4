package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	token, err := GenerateAccessToken("42", RoleNurse)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateToken(token, AllRoles...)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "42" || claims.Role != RoleNurse {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsWrongRole(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	token, err := GenerateAccessToken("42", RoleClerk)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ValidateToken(token, RoleAdmin); err == nil {
		t.Error("clerk token accepted for admin-only check")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	if _, err := ValidateToken("v2.local.not-a-real-token", AllRoles...); err == nil {
		t.Error("malformed token accepted")
	}
}
