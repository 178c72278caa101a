// file: internals/features/registration/codes/service/code_generator.go
package service

import (
	"crypto/rand"
	"fmt"
)

// Alphabet for generated codes. 0/O, 1/I/L and similar pairs are left
// out so a code read over the phone survives transcription.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CodeLength is the fixed length of a generated registration code.
const CodeLength = 8

// NewCode returns a random registration code over the unambiguous alphabet.
func NewCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate registration code: %w", err)
	}
	out := make([]byte, CodeLength)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out), nil
}
