// file: internals/features/registration/codes/service/code_generator_test.go
package service

import (
	"strings"
	"testing"
)

func TestNewCodeShape(t *testing.T) {
	code, err := NewCode()
	if err != nil {
		t.Fatalf("NewCode: %v", err)
	}
	if len(code) != CodeLength {
		t.Fatalf("code %q has length %d, want %d", code, len(code), CodeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Errorf("code %q contains %q outside the alphabet", code, r)
		}
	}
}

func TestNewCodeAvoidsAmbiguousCharacters(t *testing.T) {
	for _, c := range "01OIL" {
		if strings.ContainsRune(codeAlphabet, c) {
			t.Errorf("alphabet contains ambiguous character %q", c)
		}
	}
}

func TestNewCodeVaries(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("NewCode: %v", err)
		}
		seen[code] = struct{}{}
	}
	// collisions inside 100 draws of a 31^8 space mean the generator is broken
	if len(seen) != 100 {
		t.Errorf("got %d distinct codes out of 100", len(seen))
	}
}
