package validation

import (
	"regexp"
	"strings"

	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// Fixed validation messages shown as the Error state, never sent anywhere.
const (
	MsgInvalidEmail    = "Correo electrónico inválido"
	MsgInvalidPassword = "La contraseña debe tener al menos 8 caracteres, una letra y un número"
	MsgPasswordNoMatch = "Las contraseñas no coinciden"
	MsgInvalidDNI      = "DNI inválido"
	MsgInvalidRUC      = "RUC inválido"
	MsgInvalidPhone    = "Número de teléfono inválido"
	MsgNameRequired    = "El nombre es requerido"
	MsgClinicRequired  = "El nombre de la clínica es requerido"
	MsgLicenseRequired = "El número de licencia es requerido"
	MsgAddressRequired = "La dirección es requerida"
	MsgFieldsRequired  = "Por favor complete todos los campos"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether the address has a plausible mailbox@domain.tld
// shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword requires at least 8 alphanumeric characters with at least
// one letter and one digit
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidPhone requires exactly 9 digits
func IsValidPhone(phone string) bool {
	return len(phone) == 9 && allDigits(phone)
}

// IsValidDNI requires exactly 8 digits
func IsValidDNI(dni string) bool {
	return len(dni) == 8 && allDigits(dni)
}

// IsValidRUC requires exactly 11 digits
func IsValidRUC(ruc string) bool {
	return len(ruc) == 11 && allDigits(ruc)
}

// SignIn rejects blank credentials before any network call
func SignIn(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return apperrors.NewValidationError(MsgFieldsRequired)
	}
	return nil
}

// SignUp checks a registration payload field by field, first failure wins.
// ConfirmPassword is compared when non-empty.
func SignUp(params repositories.SignUpParams, confirmPassword string) error {
	if !IsValidEmail(params.Email) {
		return apperrors.NewValidationError(MsgInvalidEmail)
	}
	if !IsValidPassword(params.Password) {
		return apperrors.NewValidationError(MsgInvalidPassword)
	}
	if confirmPassword != "" && confirmPassword != params.Password {
		return apperrors.NewValidationError(MsgPasswordNoMatch)
	}

	if params.Role == "VETERINARY" {
		if strings.TrimSpace(params.ClinicName) == "" {
			return apperrors.NewValidationError(MsgClinicRequired)
		}
		if !IsValidRUC(params.RUC) {
			return apperrors.NewValidationError(MsgInvalidRUC)
		}
		if strings.TrimSpace(params.License) == "" {
			return apperrors.NewValidationError(MsgLicenseRequired)
		}
		if !IsValidPhone(params.ClinicPhone) {
			return apperrors.NewValidationError(MsgInvalidPhone)
		}
		if strings.TrimSpace(params.ClinicAddress) == "" {
			return apperrors.NewValidationError(MsgAddressRequired)
		}
		return nil
	}

	if strings.TrimSpace(params.Name) == "" {
		return apperrors.NewValidationError(MsgNameRequired)
	}
	if !IsValidDNI(params.DNI) {
		return apperrors.NewValidationError(MsgInvalidDNI)
	}
	if !IsValidPhone(params.Phone) {
		return apperrors.NewValidationError(MsgInvalidPhone)
	}
	return nil
}
