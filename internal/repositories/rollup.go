package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"stayback/internal/models"
)

// averageRating computes the displayed one-decimal average from a rating
// sum expressed in tenths. Ratings are DECIMAL(3,1), so the sum in tenths
// is an exact integer and half-up rounding never hits a float tie.
func averageRating(sumTenths, count int) float64 {
	return float64((2*sumTenths+count)/(2*count)) / 10
}

// RollupFromSum builds a comment rollup from a rating sum and count.
// Zero comments yield a zero rating, not NaN.
func RollupFromSum(sum float64, count int) models.CommentRollup {
	if count == 0 {
		return models.CommentRollup{}
	}
	return models.CommentRollup{
		Count:         count,
		AverageRating: averageRating(int(math.Round(sum*10)), count),
	}
}

func getCommentRollup(ctx context.Context, db *sql.DB, offerID int) (models.CommentRollup, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(rating),0) FROM comments WHERE offer_id = ?`
	var (
		count int
		sum   sql.NullFloat64
	)
	if err := db.QueryRowContext(ctx, query, offerID).Scan(&count, &sum); err != nil {
		return models.CommentRollup{}, err
	}
	return RollupFromSum(sum.Float64, count), nil
}

// getCommentRollups fetches rollups for a whole result set in one query
// so list reads do not degenerate into per-offer lookups.
func getCommentRollups(ctx context.Context, db *sql.DB, offerIDs []int) (map[int]models.CommentRollup, error) {
	rollups := make(map[int]models.CommentRollup, len(offerIDs))
	if len(offerIDs) == 0 {
		return rollups, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(offerIDs)), ",")
	query := fmt.Sprintf(
		`SELECT offer_id, COUNT(*), COALESCE(SUM(rating),0) FROM comments WHERE offer_id IN (%s) GROUP BY offer_id`,
		placeholders,
	)

	params := make([]interface{}, 0, len(offerIDs))
	for _, id := range offerIDs {
		params = append(params, id)
	}

	rows, err := db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			offerID int
			count   int
			sum     float64
		)
		if err := rows.Scan(&offerID, &count, &sum); err != nil {
			return nil, err
		}
		rollups[offerID] = RollupFromSum(sum, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comment rollup rows error: %w", err)
	}
	return rollups, nil
}
