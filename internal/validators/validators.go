package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nexconsult/docbr-api/internal/cnpj"
	"github.com/nexconsult/docbr-api/internal/cpf"
)

// Error conditions and user-facing messages for the document rules.
const (
	CodeCPF  = "document.cpf"
	CodeCNPJ = "document.cnpj"

	MessageCPF  = "CPF inválido"
	MessageCNPJ = "CNPJ inválido"
)

// CPFValidator implements the cpf rule. Empty values pass: presence is the
// responsibility of the host framework's required handling.
func CPFValidator(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if value == "" {
		return true
	}
	return cpf.IsValid(value)
}

// CNPJValidator implements the cnpj rule, accepting both the numeric and
// the alphanumeric variants. Empty values pass.
func CNPJValidator(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if value == "" {
		return true
	}
	return cnpj.IsValid(value)
}

// Register registers the cpf and cnpj rules on a validator engine.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("cpf", CPFValidator); err != nil {
		return err
	}
	return v.RegisterValidation("cnpj", CNPJValidator)
}

// RegisterBinding wires the document rules into gin's binding engine so
// that request structs can use the cpf and cnpj binding tags.
func RegisterBinding() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return Register(v)
	}
	return nil
}

// CodeFor maps a failed rule tag to its error condition. Unknown tags map
// to a generic condition.
func CodeFor(tag string) string {
	switch tag {
	case "cpf":
		return CodeCPF
	case "cnpj":
		return CodeCNPJ
	default:
		return "document.invalid"
	}
}

// MessageFor maps a failed rule tag to its fixed user-facing message.
func MessageFor(tag string) string {
	switch tag {
	case "cpf":
		return MessageCPF
	case "cnpj":
		return MessageCNPJ
	default:
		return "Documento inválido"
	}
}
