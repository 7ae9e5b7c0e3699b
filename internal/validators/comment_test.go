package validators

import (
	"testing"

	"stayback/internal/models"
)

func TestValidateCreateComment(t *testing.T) {
	valid := models.CreateCommentRequest{Text: "Lovely place, would stay again.", Rating: 4.5}
	if errs := ValidateCreateComment(valid); len(errs) != 0 {
		t.Fatalf("expected no violations, got %+v", errs)
	}

	t.Run("text too short", func(t *testing.T) {
		errs := ValidateCreateComment(models.CreateCommentRequest{Text: "ok", Rating: 3})
		if len(errs) != 1 || errs[0].Field != "text" {
			t.Fatalf("expected text violation, got %+v", errs)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		errs := ValidateCreateComment(models.CreateCommentRequest{Text: valid.Text, Rating: 5.5})
		if len(errs) != 1 || errs[0].Field != "rating" {
			t.Fatalf("expected rating violation, got %+v", errs)
		}
	})

	t.Run("rating with two decimal places", func(t *testing.T) {
		errs := ValidateCreateComment(models.CreateCommentRequest{Text: valid.Text, Rating: 4.25})
		if len(errs) != 1 || errs[0].Field != "rating" {
			t.Fatalf("expected rating violation, got %+v", errs)
		}
	})

	t.Run("whole-star rating is fine", func(t *testing.T) {
		errs := ValidateCreateComment(models.CreateCommentRequest{Text: valid.Text, Rating: 5})
		if len(errs) != 0 {
			t.Fatalf("expected no violations, got %+v", errs)
		}
	})
}
