// internal/forms/validate.go
package forms

import (
	"regexp"
	"strings"
	"unicode"
)

// User-facing validation messages. These block submission but are never
// surfaced as errors in the Go sense.
const (
	MsgNameRequired     = "Nome é obrigatório"
	MsgNameTooShort     = "Nome deve ter pelo menos 3 caracteres"
	MsgEmailRequired    = "Email é obrigatório"
	MsgEmailInvalid     = "Email inválido"
	MsgPasswordRequired = "Senha é obrigatória"
	MsgPasswordTooShort = "Senha deve ter pelo menos 8 caracteres"
	MsgPasswordWeak     = "Senha muito fraca. Inclua letras maiúsculas, números e símbolos."
	MsgConfirmRequired  = "Confirme sua senha"
	MsgConfirmMismatch  = "As senhas não coincidem"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordStrength scores a password 0..4, one point per satisfied rule:
// length ≥ 8, an uppercase letter, a digit, a symbol.
func PasswordStrength(password string) int {
	strength := 0
	if len(password) >= 8 {
		strength++
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}
	if hasUpper {
		strength++
	}
	if hasDigit {
		strength++
	}
	if hasSymbol {
		strength++
	}
	return strength
}

// SignupInput is the raw field set of the signup form.
type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ValidateSignup returns the per-field error messages for a signup attempt.
// An empty map means the form is submit-eligible.
func ValidateSignup(in SignupInput) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs["name"] = MsgNameRequired
	case len([]rune(name)) < 3:
		errs["name"] = MsgNameTooShort
	}

	validateEmail(errs, in.Email)

	switch {
	case in.Password == "":
		errs["password"] = MsgPasswordRequired
	case len(in.Password) < 8:
		errs["password"] = MsgPasswordTooShort
	case PasswordStrength(in.Password) < 2:
		errs["password"] = MsgPasswordWeak
	}

	switch {
	case in.ConfirmPassword == "":
		errs["confirm_password"] = MsgConfirmRequired
	case in.Password != in.ConfirmPassword:
		errs["confirm_password"] = MsgConfirmMismatch
	}

	return errs
}

// LoginInput is the raw field set of the login form.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin returns the per-field error messages for a login attempt.
func ValidateLogin(in LoginInput) map[string]string {
	errs := make(map[string]string)
	validateEmail(errs, in.Email)
	if in.Password == "" {
		errs["password"] = MsgPasswordRequired
	}
	return errs
}

func validateEmail(errs map[string]string, email string) {
	switch {
	case email == "":
		errs["email"] = MsgEmailRequired
	case !emailRx.MatchString(email):
		errs["email"] = MsgEmailInvalid
	}
}

// Valid reports whether a validation result allows submission.
func Valid(errs map[string]string) bool {
	return len(errs) == 0
}
