package repositories

import "testing"

func TestPlanFavoriteChange(t *testing.T) {
	cases := []struct {
		name         string
		exists       bool
		wantFavorite bool
		want         favoriteAction
	}{
		{"mark new favorite", false, true, favoriteInsert},
		{"mark already favorite", true, true, favoriteNoop},
		{"unmark favorite", true, false, favoriteDelete},
		{"unmark missing favorite", false, false, favoriteNoop},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := planFavoriteChange(c.exists, c.wantFavorite); got != c.want {
				t.Fatalf("planFavoriteChange(%v, %v) = %v, want %v", c.exists, c.wantFavorite, got, c.want)
			}
		})
	}
}
