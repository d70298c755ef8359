package cpf

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	baseLength = 9
	fullLength = 11
)

// sequentialCPF passes the checksum but is the canonical example sequence,
// rejected by Receita Federal systems.
const sequentialCPF = "12345678909"

var nonDigits = regexp.MustCompile(`\D`)

// Clean removes all non-numeric characters from CPF
func Clean(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// Format formats CPF with dots and dash (XXX.XXX.XXX-XX)
func Format(cpf string) string {
	cleaned := Clean(cpf)
	if len(cleaned) != fullLength {
		return cpf // Return original if invalid length
	}

	return cleaned[:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:11]
}

// IsValid validates CPF using the official algorithm
func IsValid(cpf string) bool {
	cleaned := Clean(cpf)

	// Check length
	if len(cleaned) != fullLength {
		return false
	}

	// Check if all digits are the same
	if isAllSameChar(cleaned) {
		return false
	}

	// Known sequential CPF is always rejected
	if cleaned == sequentialCPF {
		return false
	}

	digits := make([]int, fullLength)
	for i := 0; i < fullLength; i++ {
		digits[i] = int(cleaned[i] - '0')
	}

	// Recompute both check digits and compare
	if checkDigit(digits[:baseLength]) != digits[9] {
		return false
	}
	if checkDigit(digits[:baseLength+1]) != digits[10] {
		return false
	}

	return true
}

// Generate generates a random valid CPF. The randomness is not
// cryptographically secure; CPF numbers are not secrets.
func Generate(formatted bool) string {
	digits := make([]int, 0, fullLength)
	for i := 0; i < baseLength; i++ {
		digits = append(digits, rand.IntN(10))
	}

	digits = append(digits, checkDigit(digits))
	digits = append(digits, checkDigit(digits))

	var b strings.Builder
	b.Grow(fullLength)
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}

	if formatted {
		return Format(b.String())
	}
	return b.String()
}

// checkDigit calculates the modulo-11 verification digit for the sequence.
// The leftmost element weighs len(digits)+1 and the weight decreases by one
// per position.
func checkDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// isAllSameChar checks if all characters in the string are the same
func isAllSameChar(s string) bool {
	if len(s) == 0 {
		return false
	}

	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
