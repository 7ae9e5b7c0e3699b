package repositories

import (
	"testing"

	"stayback/internal/models"
)

func TestAverageRating(t *testing.T) {
	cases := []struct {
		sumTenths int
		count     int
		want      float64
	}{
		{10, 1, 1},
		{45, 1, 4.5},
		{212, 5, 4.2},   // 4.24 rounds down
		{425, 10, 4.3},  // 4.25 rounds up
		{1725, 50, 3.5}, // 3.45 rounds up
		{100, 3, 3.3},   // 3.333...
		{80, 3, 2.7},    // 2.666...
		{81, 6, 1.4},    // 1.35 is an exact tie, rounds up
		{207, 9, 2.3},   // 2.3 exactly
	}

	for _, c := range cases {
		if got := averageRating(c.sumTenths, c.count); got != c.want {
			t.Errorf("averageRating(%d, %d) = %v, want %v", c.sumTenths, c.count, got, c.want)
		}
	}
}

func TestRollupFromSum(t *testing.T) {
	t.Run("no comments", func(t *testing.T) {
		rollup := RollupFromSum(0, 0)
		if rollup.Count != 0 || rollup.AverageRating != 0 {
			t.Fatalf("expected zero rollup, got %+v", rollup)
		}
	})

	t.Run("single comment", func(t *testing.T) {
		rollup := RollupFromSum(4.5, 1)
		if rollup.Count != 1 {
			t.Fatalf("expected count 1, got %d", rollup.Count)
		}
		if rollup.AverageRating != 4.5 {
			t.Errorf("expected average 4.5, got %v", rollup.AverageRating)
		}
	})

	t.Run("average is rounded to one decimal", func(t *testing.T) {
		// 5 ratings summing to 21.2 average to 4.24, displayed as 4.2.
		rollup := RollupFromSum(21.2, 5)
		if rollup.AverageRating != 4.2 {
			t.Errorf("expected average 4.2, got %v", rollup.AverageRating)
		}

		// 50 ratings summing to 172.5 average to 3.45, displayed as 3.5.
		rollup = RollupFromSum(172.5, 50)
		if rollup.Count != 50 {
			t.Fatalf("expected count 50, got %d", rollup.Count)
		}
		if rollup.AverageRating != 3.5 {
			t.Errorf("expected average 3.5, got %v", rollup.AverageRating)
		}

		// 6 ratings summing to 8.1 average to exactly 1.35, displayed as 1.4
		// even though the float mean lands just below the tie.
		rollup = RollupFromSum(8.1, 6)
		if rollup.AverageRating != 1.4 {
			t.Errorf("expected average 1.4, got %v", rollup.AverageRating)
		}
	})
}

func TestEffectiveLimit(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		want      int
	}{
		{"zero falls back to default", 0, models.DefaultOfferLimit},
		{"negative falls back to default", -5, models.DefaultOfferLimit},
		{"in range is kept", 10, 10},
		{"cap wins", models.MaxOfferLimit + 1, models.MaxOfferLimit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EffectiveLimit(c.requested, models.DefaultOfferLimit, models.MaxOfferLimit)
			if got != c.want {
				t.Fatalf("EffectiveLimit(%d) = %d, want %d", c.requested, got, c.want)
			}
		})
	}
}

func TestApplyRollups(t *testing.T) {
	offers := []models.Offer{
		{ID: 1, Rating: models.NewOfferRating},
		{ID: 2, Rating: models.NewOfferRating},
	}
	rollups := map[int]models.CommentRollup{
		2: {Count: 3, AverageRating: 4.7},
	}
	favorites := map[int]bool{1: true}

	applyRollups(offers, rollups, favorites)

	if offers[0].Rating != models.NewOfferRating {
		t.Errorf("offer without comments should keep seed rating, got %v", offers[0].Rating)
	}
	if offers[0].CommentCount != 0 {
		t.Errorf("expected comment count 0, got %d", offers[0].CommentCount)
	}
	if !offers[0].IsFavorite {
		t.Error("expected offer 1 to be marked favorite")
	}

	if offers[1].Rating != 4.7 {
		t.Errorf("expected live average 4.7, got %v", offers[1].Rating)
	}
	if offers[1].CommentCount != 3 {
		t.Errorf("expected comment count 3, got %d", offers[1].CommentCount)
	}
	if offers[1].IsFavorite {
		t.Error("offer 2 should not be marked favorite")
	}
}
