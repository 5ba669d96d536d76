package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

var horarioRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// ValidateHorario aceita HH:MM ou HH:MM:SS em relógio de 24h.
func ValidateHorario(horario string) bool {
	return horarioRegex.MatchString(horario)
}

// ValidateUF aceita a sigla de unidade federativa com duas letras.
func ValidateUF(uf string) bool {
	if uf == "" {
		return true
	}
	return regexp.MustCompile(`^[A-Z]{2}$`).MatchString(uf)
}
