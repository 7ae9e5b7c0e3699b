package repositories

import (
	"stayback/internal/models"
)

// EffectiveLimit resolves the limit for a list read. A missing or invalid
// request value falls back to def; the cap always wins over the request.
func EffectiveLimit(requested, def, max int) int {
	if requested <= 0 {
		requested = def
	}
	if requested > max {
		return max
	}
	return requested
}

// applyRollups fills the computed fields of a fetched offer set from the
// batched comment rollups and the viewer's favorite offer ids. An offer
// with no comments keeps its stored seed rating so new listings are not
// shown as zero-starred; once comments exist the live average always wins.
// An empty favorite set means an anonymous viewer, so isFavorite stays
// false everywhere.
func applyRollups(offers []models.Offer, rollups map[int]models.CommentRollup, favoriteIDs map[int]bool) {
	for i := range offers {
		rollup := rollups[offers[i].ID]
		if rollup.Count > 0 {
			offers[i].Rating = rollup.AverageRating
		}
		offers[i].CommentCount = rollup.Count
		offers[i].IsFavorite = favoriteIDs[offers[i].ID]
	}
}

func offerIDs(offers []models.Offer) []int {
	ids := make([]int, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids
}
