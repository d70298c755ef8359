package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentFields struct {
	CPF  string `validate:"omitempty,cpf"`
	CNPJ string `validate:"omitempty,cnpj"`
}

func newEngine(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestRegister_ValidDocuments(t *testing.T) {
	v := newEngine(t)

	err := v.Struct(documentFields{
		CPF:  "295.379.955-93",
		CNPJ: "54.550.752/0001-55",
	})
	assert.NoError(t, err)
}

func TestRegister_AlphanumericCNPJ(t *testing.T) {
	v := newEngine(t)

	assert.NoError(t, v.Struct(documentFields{CNPJ: "12.ABC.345/01DE-35"}))
	assert.Error(t, v.Struct(documentFields{CNPJ: "12ABC34501DE36"}))
}

func TestRegister_EmptyValuesPass(t *testing.T) {
	v := newEngine(t)

	// Presence is the host framework's concern, not the document rules'
	assert.NoError(t, v.Struct(documentFields{}))
}

func TestRegister_InvalidCPF(t *testing.T) {
	v := newEngine(t)

	err := v.Struct(documentFields{CPF: "12345678909"})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "cpf", verrs[0].Tag())
}

func TestRegister_InvalidCNPJ(t *testing.T) {
	v := newEngine(t)

	err := v.Struct(documentFields{CNPJ: "54550752000156"})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "cnpj", verrs[0].Tag())
}

func TestCodeAndMessageMapping(t *testing.T) {
	assert.Equal(t, CodeCPF, CodeFor("cpf"))
	assert.Equal(t, CodeCNPJ, CodeFor("cnpj"))
	assert.Equal(t, "document.invalid", CodeFor("required"))

	assert.Equal(t, MessageCPF, MessageFor("cpf"))
	assert.Equal(t, MessageCNPJ, MessageFor("cnpj"))
}

func TestRegisterBinding(t *testing.T) {
	assert.NoError(t, RegisterBinding())
}
