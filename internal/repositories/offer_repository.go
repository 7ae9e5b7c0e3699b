package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayback/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

const offerColumns = `o.id, o.name, o.description, o.publish_date, o.city, o.preview_image,
	o.photos, o.is_premium, o.housing_type, o.room_count, o.guest_count, o.price,
	o.facilities, o.author_id, o.is_active, o.rating, o.comment_count, o.created_at, o.updated_at`

func scanOffer(scanner interface{ Scan(...interface{}) error }) (models.Offer, error) {
	var (
		o          models.Offer
		photos     sql.NullString
		facilities sql.NullString
		updatedAt  sql.NullTime
	)
	err := scanner.Scan(
		&o.ID, &o.Name, &o.Description, &o.PublishDate, &o.City, &o.PreviewImage,
		&photos, &o.IsPremium, &o.HousingType, &o.RoomCount, &o.GuestCount, &o.Price,
		&facilities, &o.AuthorID, &o.IsActive, &o.Rating, &o.CommentCount, &o.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Offer{}, err
	}

	if o.Photos, err = decodeStringList(photos); err != nil {
		return models.Offer{}, fmt.Errorf("offer %d photos: %w", o.ID, err)
	}
	if o.Facilities, err = decodeStringList(facilities); err != nil {
		return models.Offer{}, fmt.Errorf("offer %d facilities: %w", o.ID, err)
	}
	if updatedAt.Valid {
		o.UpdatedAt = &updatedAt.Time
	}
	return o, nil
}

func (r *OfferRepository) CreateOffer(ctx context.Context, o models.Offer) (models.Offer, error) {
	photos, err := encodeStringList(o.Photos)
	if err != nil {
		return models.Offer{}, err
	}
	facilities, err := encodeStringList(o.Facilities)
	if err != nil {
		return models.Offer{}, err
	}

	query := `
		INSERT INTO offers
			(name, description, publish_date, city, preview_image, photos, is_premium,
			 housing_type, room_count, guest_count, price, facilities, author_id,
			 is_active, rating, comment_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		o.Name, o.Description, o.PublishDate, o.City, o.PreviewImage, photos, o.IsPremium,
		o.HousingType, o.RoomCount, o.GuestCount, o.Price, facilities, o.AuthorID,
		o.IsActive, o.Rating, o.CommentCount,
	)
	if err != nil {
		return models.Offer{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Offer{}, err
	}
	o.ID = int(id)
	o.CreatedAt = time.Now()
	return o, nil
}

// FindOffers is the list-form read: active offers in one city, newest
// first, truncated to the resolved limit, enriched with comment rollups
// and the viewer's favorite flags in two batched queries.
func (r *OfferRepository) FindOffers(ctx context.Context, q models.OfferQuery) ([]models.Offer, error) {
	conditions := []string{"o.is_active = 1", "o.city = ?"}
	params := []interface{}{q.City}

	if q.OwnerID != 0 {
		conditions = append(conditions, "o.author_id = ?")
		params = append(params, q.OwnerID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM offers o
		WHERE %s
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, offerColumns, strings.Join(conditions, " AND "))
	params = append(params, q.Limit)

	rows, err := r.DB.QueryContext(ctx, query, params...)
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
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("offer rows error: %w", err)
	}

	rollups, err := getCommentRollups(ctx, r.DB, offerIDs(offers))
	if err != nil {
		return nil, err
	}

	favoriteIDs := map[int]bool{}
	if q.ViewerID != 0 {
		if favoriteIDs, err = r.favoriteOfferIDs(ctx, q.ViewerID); err != nil {
			return nil, err
		}
	}

	applyRollups(offers, rollups, favoriteIDs)
	return offers, nil
}

// FindPremiumOffers returns the newest premium offers for a city.
func (r *OfferRepository) FindPremiumOffers(ctx context.Context, city string, limit int, viewerID int) ([]models.Offer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM offers o
		WHERE o.is_active = 1 AND o.is_premium = 1 AND o.city = ?
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, offerColumns)

	rows, err := r.DB.QueryContext(ctx, query, city, limit)
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
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rollups, err := getCommentRollups(ctx, r.DB, offerIDs(offers))
	if err != nil {
		return nil, err
	}

	favoriteIDs := map[int]bool{}
	if viewerID != 0 {
		if favoriteIDs, err = r.favoriteOfferIDs(ctx, viewerID); err != nil {
			return nil, err
		}
	}

	applyRollups(offers, rollups, favoriteIDs)
	return offers, nil
}

// FindOfferByID is the single-form read: the offer with its author's
// public profile joined in, plus rollup and favorite flag for the viewer.
func (r *OfferRepository) FindOfferByID(ctx context.Context, offerID, viewerID int) (models.Offer, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.name, u.avatar_url, u.is_pro
		FROM offers o
		JOIN users u ON o.author_id = u.id
		WHERE o.id = ?
	`, offerColumns)

	var (
		o          models.Offer
		photos     sql.NullString
		facilities sql.NullString
		updatedAt  sql.NullTime
		author     models.Author
	)
	err := r.DB.QueryRowContext(ctx, query, offerID).Scan(
		&o.ID, &o.Name, &o.Description, &o.PublishDate, &o.City, &o.PreviewImage,
		&photos, &o.IsPremium, &o.HousingType, &o.RoomCount, &o.GuestCount, &o.Price,
		&facilities, &o.AuthorID, &o.IsActive, &o.Rating, &o.CommentCount, &o.CreatedAt, &updatedAt,
		&author.Name, &author.AvatarURL, &author.IsPro,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}

	if o.Photos, err = decodeStringList(photos); err != nil {
		return models.Offer{}, err
	}
	if o.Facilities, err = decodeStringList(facilities); err != nil {
		return models.Offer{}, err
	}
	if updatedAt.Valid {
		o.UpdatedAt = &updatedAt.Time
	}
	o.Author = &author

	rollup, err := getCommentRollup(ctx, r.DB, o.ID)
	if err != nil {
		return models.Offer{}, err
	}
	if rollup.Count > 0 {
		o.Rating = rollup.AverageRating
	}
	o.CommentCount = rollup.Count

	if viewerID != 0 {
		fav := FavoriteRepository{DB: r.DB}
		isFavorite, err := fav.IsFavorite(ctx, viewerID, o.ID)
		if err != nil {
			return models.Offer{}, err
		}
		o.IsFavorite = isFavorite
	}

	return o, nil
}

// applyOfferPatch overlays a partial payload on top of the stored row.
// The rating and comment count always come from the live rollup, so values
// a client smuggles into the payload never reach the database.
func applyOfferPatch(current models.Offer, req models.UpdateOfferRequest, rating float64, commentCount int) (models.Offer, error) {
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.PublishDate != nil {
		publishDate, err := time.Parse(time.RFC3339, *req.PublishDate)
		if err != nil {
			return models.Offer{}, fmt.Errorf("invalid publish_date: %w", err)
		}
		current.PublishDate = publishDate
	}
	if req.City != nil {
		current.City = *req.City
	}
	if req.Photos != nil {
		current.Photos = *req.Photos
		if len(current.Photos) > 0 {
			current.PreviewImage = current.Photos[0]
		}
	}
	if req.IsPremium != nil {
		current.IsPremium = *req.IsPremium
	}
	if req.HousingType != nil {
		current.HousingType = *req.HousingType
	}
	if req.RoomCount != nil {
		current.RoomCount = *req.RoomCount
	}
	if req.GuestCount != nil {
		current.GuestCount = *req.GuestCount
	}
	if req.Price != nil {
		current.Price = *req.Price
	}
	if req.Facilities != nil {
		current.Facilities = *req.Facilities
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}
	current.Rating = rating
	current.CommentCount = commentCount
	return current, nil
}

// UpdateOffer applies a partial payload on top of the current row.
func (r *OfferRepository) UpdateOffer(ctx context.Context, offerID int, req models.UpdateOfferRequest, rating float64, commentCount int) error {
	current, err := r.getOfferRow(ctx, offerID)
	if err != nil {
		return err
	}

	current, err = applyOfferPatch(current, req, rating, commentCount)
	if err != nil {
		return err
	}

	photos, err := encodeStringList(current.Photos)
	if err != nil {
		return err
	}
	facilities, err := encodeStringList(current.Facilities)
	if err != nil {
		return err
	}

	query := `
		UPDATE offers
		SET name = ?, description = ?, publish_date = ?, city = ?, preview_image = ?,
			photos = ?, is_premium = ?, housing_type = ?, room_count = ?, guest_count = ?,
			price = ?, facilities = ?, is_active = ?, rating = ?, comment_count = ?,
			updated_at = NOW()
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		current.Name, current.Description, current.PublishDate, current.City, current.PreviewImage,
		photos, current.IsPremium, current.HousingType, current.RoomCount, current.GuestCount,
		current.Price, facilities, current.IsActive, current.Rating, current.CommentCount,
		offerID,
	)
	if err != nil {
		return err
	}
	if _, err := result.RowsAffected(); err != nil {
		return err
	}
	return nil
}

// DeleteOffer removes the offer row. Comments and favorites referencing it
// are left in place; the read paths exclude them by construction.
func (r *OfferRepository) DeleteOffer(ctx context.Context, offerID int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, offerID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepository) Exists(ctx context.Context, offerID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM offers WHERE id = ?)`, offerID).Scan(&exists)
	return exists, err
}

// IsOwner reports whether userID is the author of the given offer.
// A missing offer simply reports false; existence is gated separately.
func (r *OfferRepository) IsOwner(ctx context.Context, offerID, userID int) (bool, error) {
	var authorID int
	err := r.DB.QueryRowContext(ctx, `SELECT author_id FROM offers WHERE id = ?`, offerID).Scan(&authorID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return authorID == userID, nil
}

func (r *OfferRepository) getOfferRow(ctx context.Context, offerID int) (models.Offer, error) {
	query := fmt.Sprintf(`SELECT %s FROM offers o WHERE o.id = ?`, offerColumns)
	o, err := scanOffer(r.DB.QueryRowContext(ctx, query, offerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}
	return o, nil
}

func (r *OfferRepository) favoriteOfferIDs(ctx context.Context, userID int) (map[int]bool, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT offer_id FROM favorites WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := map[int]bool{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
