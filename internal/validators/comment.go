package validators

import (
	"stayback/internal/models"
)

func ValidateCreateComment(req models.CreateCommentRequest) []FieldError {
	var errs []FieldError

	if !lengthBetween(req.Text, models.MinCommentTextLength, models.MaxCommentTextLength) {
		errs = append(errs, FieldError{
			Field:   "text",
			Message: lengthMessage("text", models.MinCommentTextLength, models.MaxCommentTextLength),
		})
	}

	if req.Rating < models.MinCommentRating || req.Rating > models.MaxCommentRating {
		errs = append(errs, FieldError{
			Field:   "rating",
			Message: rangeMessage("rating", models.MinCommentRating, models.MaxCommentRating),
		})
	}

	if !hasOneDecimalPlace(req.Rating) {
		errs = append(errs, FieldError{
			Field:   "rating",
			Message: "rating must have at most one decimal place",
		})
	}

	return errs
}
