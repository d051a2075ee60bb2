package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "studyabroad_backend/internals/features/users/user/model"
)

func TestSignAccessTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	user := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Budi",
		Role:     "student",
	}

	tokenString, err := signAccessToken(user, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: err=%v valid=%v", err, parsed != nil && parsed.Valid)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims["id"] != user.ID.String() {
		t.Fatalf("id claim = %v, want %s", claims["id"], user.ID)
	}
	if claims["role"] != "student" {
		t.Fatalf("role claim = %v, want student", claims["role"])
	}
	if claims["user_name"] != "Budi" {
		t.Fatalf("user_name claim = %v, want Budi", claims["user_name"])
	}
}

func TestSignAccessTokenRejectsWrongSecret(t *testing.T) {
	user := userModel.UserModel{ID: uuid.New(), Role: "student"}
	tokenString, err := signAccessToken(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (any, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && parsed.Valid {
		t.Fatalf("token harus ditolak bila secret tidak cocok")
	}
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	a := computeRefreshHash("token-x", "secret")
	b := computeRefreshHash("token-x", "secret")
	if !bytes.Equal(a, b) {
		t.Fatalf("hash tidak deterministik")
	}

	c := computeRefreshHash("token-y", "secret")
	if bytes.Equal(a, c) {
		t.Fatalf("token berbeda menghasilkan hash sama")
	}
	d := computeRefreshHash("token-x", "other-secret")
	if bytes.Equal(a, d) {
		t.Fatalf("secret berbeda menghasilkan hash sama")
	}
}
