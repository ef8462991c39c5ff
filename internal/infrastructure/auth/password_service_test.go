package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("trainerpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "trainerpass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Errorf("hash %q does not carry the expected work factor", hash)
	}

	if !svc.Verify(hash, "trainerpass") {
		t.Error("the original password must verify")
	}
	if svc.Verify(hash, "wrongpass") {
		t.Error("a wrong password must not verify")
	}
	if svc.Verify(hash, "") {
		t.Error("an empty password must not verify")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("trainerpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Hash("trainerpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestPasswordServiceImpl_VerifyMalformedHash(t *testing.T) {
	svc := NewPasswordService()

	if svc.Verify("", "trainerpass") {
		t.Error("an empty stored hash must verify false")
	}
	if svc.Verify("not-a-bcrypt-hash", "trainerpass") {
		t.Error("a malformed stored hash must verify false")
	}
}
