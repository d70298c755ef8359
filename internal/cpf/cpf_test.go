package cpf

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid formatted", "295.379.955-93", true},
		{"valid unformatted", "29537995593", true},
		{"wrong second check digit", "29537995594", false},
		{"wrong first check digit", "29537995583", false},
		{"sequential blacklisted", "12345678909", false},
		{"sequential blacklisted formatted", "123.456.789-09", false},
		{"too short", "2953799559", false},
		{"too long", "295379955931", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
		{"cnpj-shaped input", "54550752000155", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestIsValid_RepeatedDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		input := strings.Repeat(string(d), 11)
		assert.False(t, IsValid(input), "repeated digit CPF %s must be invalid", input)
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "29537995593", Clean("295.379.955-93"))
	assert.Equal(t, "29537995593", Clean("295 379 955 93"))
	assert.Equal(t, "", Clean("abc"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "295.379.955-93", Format("29537995593"))
	// Format is a display transform only; already formatted input round-trips
	assert.Equal(t, "295.379.955-93", Format("295.379.955-93"))
	// Wrong length is returned untouched
	assert.Equal(t, "1234", Format("1234"))
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 100; i++ {
		document := Generate(false)
		require.Len(t, document, 11)
		assert.True(t, IsValid(document), "generated CPF %s must be valid", document)
		assert.True(t, IsValid(Format(document)), "formatted CPF %s must stay valid", Format(document))
	}
}

func TestGenerate_Formatted(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	for i := 0; i < 20; i++ {
		document := Generate(true)
		assert.Regexp(t, pattern, document)
		assert.True(t, IsValid(document))
	}
}

func TestIsValid_MutatedCheckDigits(t *testing.T) {
	for i := 0; i < 20; i++ {
		document := Generate(false)
		require.True(t, IsValid(document))

		for _, pos := range []int{9, 10} {
			mutated := []byte(document)
			mutated[pos] = '0' + (mutated[pos]-'0'+1)%10
			assert.False(t, IsValid(string(mutated)),
				"flipping position %d of %s must invalidate it", pos, document)
		}
	}
}

func TestCheckDigit(t *testing.T) {
	// 295379955 -> check digits 9 and 3
	base := []int{2, 9, 5, 3, 7, 9, 9, 5, 5}
	first := checkDigit(base)
	assert.Equal(t, 9, first)

	second := checkDigit(append(base, first))
	assert.Equal(t, 3, second)
}
