package validators

import (
	"testing"

	"stayback/internal/models"
)

func validCreateOfferRequest() models.CreateOfferRequest {
	return models.CreateOfferRequest{
		Name:        "Cozy riverside flat",
		Description: "A bright two-room apartment near the old town bridge.",
		City:        "Amsterdam",
		Photos:      []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		HousingType: "apartment",
		RoomCount:   2,
		GuestCount:  4,
		Price:       320,
		Facilities:  []string{"Breakfast", "Washer"},
	}
}

func TestValidateCreateOfferAccepts(t *testing.T) {
	if errs := ValidateCreateOffer(validCreateOfferRequest()); len(errs) != 0 {
		t.Fatalf("expected no violations, got %+v", errs)
	}
}

func TestValidateCreateOfferRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CreateOfferRequest)
		field  string
	}{
		{"short name", func(r *models.CreateOfferRequest) { r.Name = "Tiny" }, "name"},
		{"short description", func(r *models.CreateOfferRequest) { r.Description = "too short" }, "description"},
		{"unknown city", func(r *models.CreateOfferRequest) { r.City = "Berlin" }, "city"},
		{"wrong photo count", func(r *models.CreateOfferRequest) { r.Photos = r.Photos[:5] }, "photos"},
		{"unknown housing type", func(r *models.CreateOfferRequest) { r.HousingType = "castle" }, "housing_type"},
		{"too many rooms", func(r *models.CreateOfferRequest) { r.RoomCount = 9 }, "room_count"},
		{"too many guests", func(r *models.CreateOfferRequest) { r.GuestCount = 11 }, "guest_count"},
		{"price too low", func(r *models.CreateOfferRequest) { r.Price = 99 }, "price"},
		{"price too high", func(r *models.CreateOfferRequest) { r.Price = 100001 }, "price"},
		{"unknown facility", func(r *models.CreateOfferRequest) { r.Facilities = []string{"Helipad"} }, "facilities"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateOfferRequest()
			c.mutate(&req)

			errs := ValidateCreateOffer(req)
			if len(errs) == 0 {
				t.Fatal("expected a violation, got none")
			}
			if errs[0].Field != c.field {
				t.Errorf("expected violation on %q, got %q: %s", c.field, errs[0].Field, errs[0].Message)
			}
		})
	}
}

func TestValidateCreateOfferCollectsAllViolations(t *testing.T) {
	req := validCreateOfferRequest()
	req.Name = "x"
	req.City = "Atlantis"
	req.Price = 1

	errs := ValidateCreateOffer(req)
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %+v", len(errs), errs)
	}
}

func TestValidateUpdateOfferIgnoresAbsentFields(t *testing.T) {
	if errs := ValidateUpdateOffer(models.UpdateOfferRequest{}); len(errs) != 0 {
		t.Fatalf("empty payload should be valid, got %+v", errs)
	}
}

func TestValidateUpdateOfferChecksPresentFields(t *testing.T) {
	badCity := "Gotham"
	rooms := 0

	errs := ValidateUpdateOffer(models.UpdateOfferRequest{City: &badCity, RoomCount: &rooms})
	if len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %+v", len(errs), errs)
	}
}
