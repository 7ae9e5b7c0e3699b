package validators

import (
	"testing"

	"stayback/internal/models"
)

func TestValidateSignUp(t *testing.T) {
	valid := models.SignUpRequest{Name: "Keks", Email: "keks@example.com", Password: "secret1"}
	if errs := ValidateSignUp(valid); len(errs) != 0 {
		t.Fatalf("expected no violations, got %+v", errs)
	}

	t.Run("name too long", func(t *testing.T) {
		req := valid
		req.Name = "a very long user name over limit"
		errs := ValidateSignUp(req)
		if len(errs) != 1 || errs[0].Field != "name" {
			t.Fatalf("expected name violation, got %+v", errs)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		errs := ValidateSignUp(req)
		if len(errs) != 1 || errs[0].Field != "email" {
			t.Fatalf("expected email violation, got %+v", errs)
		}
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "abc"
		errs := ValidateSignUp(req)
		if len(errs) != 1 || errs[0].Field != "password" {
			t.Fatalf("expected password violation, got %+v", errs)
		}
	})

	t.Run("password too long", func(t *testing.T) {
		req := valid
		req.Password = "waytoolongpassword"
		errs := ValidateSignUp(req)
		if len(errs) != 1 || errs[0].Field != "password" {
			t.Fatalf("expected password violation, got %+v", errs)
		}
	})
}

func TestValidateSignIn(t *testing.T) {
	valid := models.SignInRequest{Email: "keks@example.com", Password: "secret1"}
	if errs := ValidateSignIn(valid); len(errs) != 0 {
		t.Fatalf("expected no violations, got %+v", errs)
	}

	errs := ValidateSignIn(models.SignInRequest{Email: "bad", Password: ""})
	if len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %+v", errs)
	}
}
