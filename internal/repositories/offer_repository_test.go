package repositories

import (
	"testing"
	"time"

	"stayback/internal/models"
)

func storedOffer() models.Offer {
	return models.Offer{
		ID:           7,
		Name:         "Cozy riverside flat",
		Description:  "A bright two-room apartment near the old town bridge.",
		PublishDate:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		City:         "Amsterdam",
		PreviewImage: "1.jpg",
		Photos:       []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		HousingType:  "apartment",
		RoomCount:    2,
		GuestCount:   4,
		Price:        320,
		Facilities:   []string{"Breakfast", "Washer"},
		AuthorID:     21,
		IsActive:     true,
		Rating:       models.NewOfferRating,
	}
}

func TestApplyOfferPatch(t *testing.T) {
	t.Run("empty payload keeps stored values", func(t *testing.T) {
		current := storedOffer()

		got, err := applyOfferPatch(current, models.UpdateOfferRequest{}, current.Rating, current.CommentCount)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != current.Name || got.City != current.City || got.Price != current.Price {
			t.Errorf("empty payload changed stored fields: %+v", got)
		}
	})

	t.Run("present fields overwrite", func(t *testing.T) {
		name := "Sunny attic studio"
		price := 540.0
		photos := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"}
		req := models.UpdateOfferRequest{Name: &name, Price: &price, Photos: &photos}

		got, err := applyOfferPatch(storedOffer(), req, 4.2, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != name {
			t.Errorf("expected name %q, got %q", name, got.Name)
		}
		if got.Price != price {
			t.Errorf("expected price %v, got %v", price, got.Price)
		}
		if got.PreviewImage != "a.jpg" {
			t.Errorf("expected preview to follow the first photo, got %q", got.PreviewImage)
		}
	})

	t.Run("payload rating and comment count are ignored", func(t *testing.T) {
		rating := 5.0
		commentCnt := 999
		req := models.UpdateOfferRequest{Rating: &rating, CommentCnt: &commentCnt}

		got, err := applyOfferPatch(storedOffer(), req, 4.2, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Rating != 4.2 {
			t.Errorf("expected rollup rating 4.2, got %v", got.Rating)
		}
		if got.CommentCount != 3 {
			t.Errorf("expected rollup comment count 3, got %d", got.CommentCount)
		}
	})

	t.Run("rollup values land even without a payload", func(t *testing.T) {
		got, err := applyOfferPatch(storedOffer(), models.UpdateOfferRequest{}, 3.7, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Rating != 3.7 || got.CommentCount != 12 {
			t.Errorf("expected rating 3.7 and count 12, got %v and %d", got.Rating, got.CommentCount)
		}
	})

	t.Run("invalid publish_date errors", func(t *testing.T) {
		bad := "yesterday"

		if _, err := applyOfferPatch(storedOffer(), models.UpdateOfferRequest{PublishDate: &bad}, 1, 0); err == nil {
			t.Fatal("expected an error for a malformed publish_date")
		}
	})
}
