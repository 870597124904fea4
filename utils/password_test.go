package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cretPass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cretPass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cretPass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrongPass1") {
		t.Error("wrong password accepted")
	}
}
