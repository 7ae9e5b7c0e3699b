package validators

import (
	"fmt"

	"stayback/internal/models"
)

func ValidateCreateOffer(req models.CreateOfferRequest) []FieldError {
	var errs []FieldError

	if !lengthBetween(req.Name, models.MinOfferNameLength, models.MaxOfferNameLength) {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: lengthMessage("name", models.MinOfferNameLength, models.MaxOfferNameLength),
		})
	}

	if !lengthBetween(req.Description, models.MinOfferDescriptionLength, models.MaxOfferDescriptionLength) {
		errs = append(errs, FieldError{
			Field:   "description",
			Message: lengthMessage("description", models.MinOfferDescriptionLength, models.MaxOfferDescriptionLength),
		})
	}

	if !models.IsValidCity(req.City) {
		errs = append(errs, FieldError{Field: "city", Message: "city must be one of the known cities"})
	}

	if len(req.Photos) != models.OfferPhotoCount {
		errs = append(errs, FieldError{
			Field:   "photos",
			Message: fmt.Sprintf("photos must contain exactly %d elements", models.OfferPhotoCount),
		})
	}

	if !models.IsValidHousingType(req.HousingType) {
		errs = append(errs, FieldError{Field: "housing_type", Message: "housing_type must be one of the known housing types"})
	}

	if req.RoomCount < models.MinRoomCount || req.RoomCount > models.MaxRoomCount {
		errs = append(errs, FieldError{
			Field:   "room_count",
			Message: rangeMessage("room_count", models.MinRoomCount, models.MaxRoomCount),
		})
	}

	if req.GuestCount < models.MinGuestCount || req.GuestCount > models.MaxGuestCount {
		errs = append(errs, FieldError{
			Field:   "guest_count",
			Message: rangeMessage("guest_count", models.MinGuestCount, models.MaxGuestCount),
		})
	}

	if req.Price < models.MinOfferPrice || req.Price > models.MaxOfferPrice {
		errs = append(errs, FieldError{
			Field:   "price",
			Message: rangeMessage("price", models.MinOfferPrice, models.MaxOfferPrice),
		})
	}

	errs = append(errs, validateFacilities(req.Facilities)...)

	return errs
}

// ValidateUpdateOffer checks only the fields present in a partial payload.
func ValidateUpdateOffer(req models.UpdateOfferRequest) []FieldError {
	var errs []FieldError

	if req.Name != nil && !lengthBetween(*req.Name, models.MinOfferNameLength, models.MaxOfferNameLength) {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: lengthMessage("name", models.MinOfferNameLength, models.MaxOfferNameLength),
		})
	}

	if req.Description != nil && !lengthBetween(*req.Description, models.MinOfferDescriptionLength, models.MaxOfferDescriptionLength) {
		errs = append(errs, FieldError{
			Field:   "description",
			Message: lengthMessage("description", models.MinOfferDescriptionLength, models.MaxOfferDescriptionLength),
		})
	}

	if req.City != nil && !models.IsValidCity(*req.City) {
		errs = append(errs, FieldError{Field: "city", Message: "city must be one of the known cities"})
	}

	if req.Photos != nil && len(*req.Photos) != models.OfferPhotoCount {
		errs = append(errs, FieldError{
			Field:   "photos",
			Message: fmt.Sprintf("photos must contain exactly %d elements", models.OfferPhotoCount),
		})
	}

	if req.HousingType != nil && !models.IsValidHousingType(*req.HousingType) {
		errs = append(errs, FieldError{Field: "housing_type", Message: "housing_type must be one of the known housing types"})
	}

	if req.RoomCount != nil && (*req.RoomCount < models.MinRoomCount || *req.RoomCount > models.MaxRoomCount) {
		errs = append(errs, FieldError{
			Field:   "room_count",
			Message: rangeMessage("room_count", models.MinRoomCount, models.MaxRoomCount),
		})
	}

	if req.GuestCount != nil && (*req.GuestCount < models.MinGuestCount || *req.GuestCount > models.MaxGuestCount) {
		errs = append(errs, FieldError{
			Field:   "guest_count",
			Message: rangeMessage("guest_count", models.MinGuestCount, models.MaxGuestCount),
		})
	}

	if req.Price != nil && (*req.Price < models.MinOfferPrice || *req.Price > models.MaxOfferPrice) {
		errs = append(errs, FieldError{
			Field:   "price",
			Message: rangeMessage("price", models.MinOfferPrice, models.MaxOfferPrice),
		})
	}

	if req.Facilities != nil {
		errs = append(errs, validateFacilities(*req.Facilities)...)
	}

	return errs
}

func validateFacilities(facilities []string) []FieldError {
	var errs []FieldError
	for _, tag := range facilities {
		if !models.IsValidFacility(tag) {
			errs = append(errs, FieldError{
				Field:   "facilities",
				Message: fmt.Sprintf("unknown facility %q", tag),
			})
		}
	}
	return errs
}
