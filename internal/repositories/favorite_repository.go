package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"stayback/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

// favoriteAction is the resolved outcome of a toggle request.
type favoriteAction int

const (
	favoriteNoop favoriteAction = iota
	favoriteInsert
	favoriteDelete
)

// planFavoriteChange decides what a toggle has to do. Repeating the same
// toggle is a no-op in either direction.
func planFavoriteChange(exists, wantFavorite bool) favoriteAction {
	switch {
	case wantFavorite && !exists:
		return favoriteInsert
	case !wantFavorite && exists:
		return favoriteDelete
	default:
		return favoriteNoop
	}
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, offerID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND offer_id = ?`,
		userID, offerID,
	).Scan(&count)
	return count > 0, err
}

// ChangeFavoriteStatus toggles the favorite record for a (user, offer)
// pair. The schema's unique key backs up the lookup-before-insert, so a
// concurrent duplicate insert degrades to a no-op instead of a second row.
func (r *FavoriteRepository) ChangeFavoriteStatus(ctx context.Context, userID, offerID int, wantFavorite bool) error {
	exists, err := r.IsFavorite(ctx, userID, offerID)
	if err != nil {
		return err
	}

	switch planFavoriteChange(exists, wantFavorite) {
	case favoriteInsert:
		_, err := r.DB.ExecContext(ctx,
			`INSERT INTO favorites (user_id, offer_id, created_at) VALUES (?, ?, NOW())`,
			userID, offerID,
		)
		if err != nil && !isDuplicateEntryError(err) {
			return err
		}
	case favoriteDelete:
		_, err := r.DB.ExecContext(ctx,
			`DELETE FROM favorites WHERE user_id = ? AND offer_id = ?`,
			userID, offerID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FindFavoriteOffers resolves the user's favorited offers into enriched
// projections. Offers that have been deleted or deactivated since being
// favorited are silently excluded by the join. Every returned offer is a
// favorite by construction.
func (r *FavoriteRepository) FindFavoriteOffers(ctx context.Context, userID int) ([]models.Offer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM favorites f
		JOIN offers o ON f.offer_id = o.id AND o.is_active = 1
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.id DESC
	`, offerColumns)

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []models.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		o.IsFavorite = true
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("favorite rows error: %w", err)
	}

	rollups, err := getCommentRollups(ctx, r.DB, offerIDs(offers))
	if err != nil {
		return nil, err
	}
	for i := range offers {
		rollup := rollups[offers[i].ID]
		if rollup.Count > 0 {
			offers[i].Rating = rollup.AverageRating
		}
		offers[i].CommentCount = rollup.Count
	}

	return offers, nil
}
