package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	// SHA256 of empty string
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestIteratedSHA256_OneIteration(t *testing.T) {
	if got, want := IteratedSHA256("abc", 1), SHA256Hex("abc"); got != want {
		t.Errorf("1 iteration = %s, want plain SHA256 %s", got, want)
	}
}

func TestIteratedSHA256_TwoIterations(t *testing.T) {
	first := sha256.Sum256([]byte("abc"))
	second := sha256.Sum256(first[:])
	want := hex.EncodeToString(second[:])

	if got := IteratedSHA256("abc", 2); got != want {
		t.Errorf("2 iterations = %s, want %s", got, want)
	}
}

func TestHashIP_SaltChangesOutput(t *testing.T) {
	a := HashIP("203.0.113.7", "salt-a")
	b := HashIP("203.0.113.7", "salt-b")
	if a == b {
		t.Error("different salts should produce different hashes")
	}

	// Deterministic for the same inputs.
	if a != HashIP("203.0.113.7", "salt-a") {
		t.Error("HashIP should be deterministic")
	}
}
