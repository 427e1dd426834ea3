// api/util/validation_util.go

package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hospicore/facility/api/model"
)

// Field rules shared by the nurse, secretary and patient forms.
var (
	nameRegex     = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	phoneRegex    = regexp.MustCompile(`^\d{10}$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{4,16}$`)

	// Self-service passwords: at least 8 characters mixing letters, digits
	// and a symbol.
	passwordLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	passwordDigitRegex  = regexp.MustCompile(`\d`)
	passwordSymbolRegex = regexp.MustCompile(`[!@#$%^&*]`)
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateName accepts non-empty names made of letters (accented Latin
// included) and spaces.
func (v *ValidationUtil) ValidateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if !nameRegex.MatchString(value) {
		return fmt.Errorf("%s must contain only letters and spaces", field)
	}
	return nil
}

// ValidatePhone requires exactly 10 ASCII digits.
func (v *ValidationUtil) ValidatePhone(value string) error {
	if !phoneRegex.MatchString(value) {
		return fmt.Errorf("phone must be exactly 10 digits")
	}
	return nil
}

func (v *ValidationUtil) ValidateEmail(value string) error {
	if !emailRegex.MatchString(value) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateUsername requires 4-16 characters: alphanumeric plus '.', '_', '-'.
func (v *ValidationUtil) ValidateUsername(value string) error {
	if !usernameRegex.MatchString(value) {
		return fmt.Errorf("username must be 4-16 characters (letters, digits, '.', '_', '-')")
	}
	return nil
}

// ValidatePassword enforces the minimum-strength rule for self-service
// credential updates.
func (v *ValidationUtil) ValidatePassword(value string) error {
	if len(value) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if !passwordLetterRegex.MatchString(value) ||
		!passwordDigitRegex.MatchString(value) ||
		!passwordSymbolRegex.MatchString(value) {
		return fmt.Errorf("password must combine letters, digits and a symbol")
	}
	return nil
}

// ValidateStaff runs every field rule for a nurse/secretary registration.
// The first failing field is reported; callers re-run per field as the user
// types, so one error at a time matches the screens.
func (v *ValidationUtil) ValidateStaff(req model.CreateStaffRequest) error {
	if err := v.ValidateName("first name", req.FirstName); err != nil {
		return err
	}
	if err := v.ValidateName("paternal surname", req.PaternalName); err != nil {
		return err
	}
	if err := v.ValidateName("maternal surname", req.MaternalName); err != nil {
		return err
	}
	if err := v.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := v.ValidatePhone(req.Phone); err != nil {
		return err
	}
	if err := v.ValidateUsername(req.Username); err != nil {
		return err
	}
	if req.Floor.ID == 0 {
		return fmt.Errorf("a floor must be selected")
	}
	return nil
}

// ValidatePatientAdmission checks the admission form fields.
func (v *ValidationUtil) ValidatePatientAdmission(req model.AdmitPatientRequest) error {
	if err := v.ValidateName("first name", req.FirstName); err != nil {
		return err
	}
	if err := v.ValidateName("paternal surname", req.PaternalName); err != nil {
		return err
	}
	if err := v.ValidateName("maternal surname", req.MaternalName); err != nil {
		return err
	}
	if err := v.ValidatePhone(req.Phone); err != nil {
		return err
	}
	if req.BedID == 0 {
		return fmt.Errorf("a bed must be selected")
	}
	if req.NurseID == 0 {
		return fmt.Errorf("an admitting nurse is required")
	}
	return nil
}

// ValidateCredentials checks a self-service username/password change.
func (v *ValidationUtil) ValidateCredentials(req model.UpdateCredentialsRequest) error {
	if err := v.ValidateUsername(req.Username); err != nil {
		return err
	}
	return v.ValidatePassword(req.Password)
}

// GeneratePassword derives the initial credential for a system-created staff
// account: first name's first word concatenated with the paternal surname,
// first letter capitalized.
func (v *ValidationUtil) GeneratePassword(firstName, paternalName string) string {
	first := strings.Fields(strings.TrimSpace(firstName))
	name := ""
	if len(first) > 0 {
		name = first[0]
	}
	base := name + strings.TrimSpace(paternalName)
	if base == "" {
		return ""
	}
	// Names admit accented letters, so the first letter may span several
	// bytes; capitalize the rune, not the byte.
	r, size := utf8.DecodeRuneInString(base)
	return string(unicode.ToUpper(r)) + base[size:]
}
