package validators

import (
	"stayback/internal/models"
)

func ValidateSignUp(req models.SignUpRequest) []FieldError {
	var errs []FieldError

	if !lengthBetween(req.Name, models.MinUserNameLength, models.MaxUserNameLength) {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: lengthMessage("name", models.MinUserNameLength, models.MaxUserNameLength),
		})
	}

	if !isValidEmail(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid email address"})
	}

	if !lengthBetween(req.Password, models.MinPasswordLength, models.MaxPasswordLength) {
		errs = append(errs, FieldError{
			Field:   "password",
			Message: lengthMessage("password", models.MinPasswordLength, models.MaxPasswordLength),
		})
	}

	return errs
}

func ValidateSignIn(req models.SignInRequest) []FieldError {
	var errs []FieldError

	if !isValidEmail(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid email address"})
	}

	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password must not be empty"})
	}

	return errs
}
