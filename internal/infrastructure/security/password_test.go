package security

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if !h.Verify(hash, "pw1") {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify(hash, "pw2") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestPasswordHasher_LegacyDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	sum := sha256.Sum256([]byte("pw1"))
	legacy := hex.EncodeToString(sum[:])

	if !h.Verify(legacy, "pw1") {
		t.Fatalf("expected legacy digest to verify")
	}
	if h.Verify(legacy, "pw2") {
		t.Fatalf("expected wrong password to fail against legacy digest")
	}
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	if _, err := h.Hash(strings.Repeat("x", 73)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIsLegacyDigest(t *testing.T) {
	cases := map[string]bool{
		strings.Repeat("a", 64):   true,
		strings.Repeat("A", 64):   false,
		strings.Repeat("a", 63):   false,
		"$2a$10$abcdefghijklmnop": false,
		"":                        false,
	}
	for in, want := range cases {
		if got := isLegacyDigest(in); got != want {
			t.Errorf("isLegacyDigest(%q) = %v, want %v", in, got, want)
		}
	}
}
