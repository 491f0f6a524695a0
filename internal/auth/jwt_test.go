package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, RoleEditor)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}

	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}

	if extractedRole != RoleEditor {
		t.Fatalf("Expected role %s, got %s", RoleEditor, extractedRole)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
