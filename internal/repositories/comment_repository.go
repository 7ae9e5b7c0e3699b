package repositories

import (
	"context"
	"database/sql"

	"stayback/internal/models"
)

type CommentRepository struct {
	DB *sql.DB
}

func (r *CommentRepository) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	query := `
		INSERT INTO comments (text, rating, author_id, offer_id, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, c.Text, c.Rating, c.AuthorID, c.OfferID)
	if err != nil {
		return models.Comment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Comment{}, err
	}
	c.ID = int(id)
	return c, nil
}

func (r *CommentRepository) GetCommentsByOfferID(ctx context.Context, offerID, limit int) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.rating, c.author_id, c.offer_id,
			   u.name, u.avatar_url,
			   c.created_at
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.offer_id = ?
		ORDER BY c.created_at DESC
		LIMIT ?
	`
	rows, err := r.DB.QueryContext(ctx, query, offerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var (
			c      models.Comment
			avatar sql.NullString
		)
		err := rows.Scan(&c.ID, &c.Text, &c.Rating, &c.AuthorID, &c.OfferID,
			&c.AuthorName, &avatar, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		if avatar.Valid && avatar.String != "" {
			c.AuthorAvatarURL = &avatar.String
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
