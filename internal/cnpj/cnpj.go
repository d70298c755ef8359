package cnpj

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

const (
	baseLength = 12
	fullLength = 14
)

// Type identifies the CNPJ variant used for generation.
type Type string

const (
	// TypeNumeric is the legacy all-digit CNPJ variant.
	TypeNumeric Type = "numeric"
	// TypeAlphanumeric is the alphanumeric CNPJ variant introduced by
	// Receita Federal, with uppercase letters allowed in the base.
	TypeAlphanumeric Type = "alfanumeric"
)

var nonAlphanumeric = regexp.MustCompile(`[^0-9A-Za-z]`)

// letterValues is the fixed table used by the alphanumeric check-digit
// calculation (ASCII code minus 48). Characters outside the table and
// outside 0-9 contribute zero to the weighted sum.
var letterValues = map[byte]int{
	'A': 17, 'B': 18, 'C': 19, 'D': 20, 'E': 21, 'F': 22, 'G': 23,
	'H': 24, 'I': 25, 'J': 26, 'K': 27, 'L': 28, 'M': 29, 'N': 30,
	'O': 31, 'P': 32, 'Q': 33, 'R': 34, 'S': 35, 'T': 36, 'U': 37,
	'V': 38, 'W': 39, 'X': 40, 'Y': 41, 'Z': 42,
}

// Clean removes everything except letters and digits from CNPJ
func Clean(cnpj string) string {
	return nonAlphanumeric.ReplaceAllString(cnpj, "")
}

// Format formats CNPJ with dots, slash and dash (XX.XXX.XXX/XXXX-XX),
// for both the numeric and the alphanumeric variants
func Format(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != fullLength {
		return cnpj // Return original if invalid length
	}

	return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:14]
}

// IsValid validates CNPJ using the official algorithm. All-digit input is
// checked as a legacy numeric CNPJ; input containing letters is checked as
// an alphanumeric CNPJ.
func IsValid(cnpj string) bool {
	cleaned := Clean(cnpj)

	// Check length
	if len(cleaned) != fullLength {
		return false
	}

	// Check if all characters are the same
	if isAllSameChar(cleaned) {
		return false
	}

	if isNumeric(cleaned) {
		return validateNumeric(cleaned)
	}
	return validateAlphanumeric(cleaned)
}

// validateNumeric recomputes both check digits of an all-digit CNPJ and
// compares them position by position.
func validateNumeric(cleaned string) bool {
	digits := make([]int, fullLength)
	for i := 0; i < fullLength; i++ {
		digits[i] = int(cleaned[i] - '0')
	}

	if checkDigit(digits[:baseLength]) != digits[12] {
		return false
	}
	if checkDigit(digits[:baseLength+1]) != digits[13] {
		return false
	}

	return true
}

// validateAlphanumeric recomputes both check digits from the positional
// values of the first 12 characters and compares the pair against the
// trailing two characters parsed as an integer. A non-numeric trailing
// pair never matches.
func validateAlphanumeric(cleaned string) bool {
	first, second := alphanumericCheckDigits(cleaned[:baseLength])

	actual, err := strconv.Atoi(cleaned[baseLength:fullLength])
	if err != nil {
		return false
	}

	return actual == first*10+second
}

// alphanumericCheckDigits computes the two verification digits for a
// 12-character alphanumeric base.
func alphanumericCheckDigits(base string) (int, int) {
	values := make([]int, 0, baseLength+1)
	for i := 0; i < len(base); i++ {
		values = append(values, symbolValue(base[i]))
	}

	first := checkDigit(values)
	second := checkDigit(append(values, first))
	return first, second
}

// checkDigit calculates the modulo-11 verification digit. Weights cycle
// 2 through 9, assigned from the rightmost element leftward.
func checkDigit(values []int) int {
	weight := 2
	sum := 0
	for i := len(values) - 1; i >= 0; i-- {
		sum += values[i] * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// symbolValue returns the numeric contribution of a character to the
// weighted sum: the digit itself, or the fixed table value for A-Z.
func symbolValue(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return letterValues[c]
}

// Generate generates a random valid CNPJ of the given variant. The
// randomness is not cryptographically secure; CNPJ numbers are not secrets.
func Generate(cnpjType Type, formatted bool) string {
	var b strings.Builder
	b.Grow(fullLength)

	for i := 0; i < baseLength; i++ {
		if cnpjType == TypeAlphanumeric && rand.IntN(2) == 0 {
			b.WriteByte(byte('A' + rand.IntN(26)))
		} else {
			b.WriteByte(byte('0' + rand.IntN(10)))
		}
	}

	base := b.String()
	first, second := alphanumericCheckDigits(base)
	b.WriteByte(byte('0' + first))
	b.WriteByte(byte('0' + second))

	if formatted {
		return Format(b.String())
	}
	return b.String()
}

// IsAlphanumeric reports whether the cleaned CNPJ contains letters.
func IsAlphanumeric(cnpj string) bool {
	cleaned := Clean(cnpj)
	return len(cleaned) == fullLength && !isNumeric(cleaned)
}

// Root returns the root of the CNPJ (first 8 characters), shared by all
// establishments of the same company. Empty for invalid lengths.
func Root(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != fullLength {
		return ""
	}
	return cleaned[:8]
}

// Branch returns the establishment number (positions 8-11). Empty for
// invalid lengths.
func Branch(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != fullLength {
		return ""
	}
	return cleaned[8:12]
}

// EstablishmentKind returns MATRIZ for the 0001 establishment, FILIAL for
// any other, INVALID for malformed input.
func EstablishmentKind(cnpj string) string {
	branch := Branch(cnpj)
	switch branch {
	case "":
		return "INVALID"
	case "0001":
		return "MATRIZ"
	default:
		return "FILIAL"
	}
}

// AreSameRoot checks if two CNPJs belong to the same company (same root)
func AreSameRoot(cnpj1, cnpj2 string) bool {
	root1 := Root(cnpj1)
	root2 := Root(cnpj2)

	return root1 != "" && root2 != "" && root1 == root2
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
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
