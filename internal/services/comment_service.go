package services

import (
	"context"

	"stayback/internal/models"
	"stayback/internal/notify"
	"stayback/internal/repositories"
)

type CommentService struct {
	CommentRepo *repositories.CommentRepository
	OfferRepo   *repositories.OfferRepository
	UserRepo    *repositories.UserRepository
	Notifier    *notify.CommentNotifier
}

// GetCommentsByOfferID lists an offer's newest comments. The request
// limit is clamped to the hard comment cap.
func (s *CommentService) GetCommentsByOfferID(ctx context.Context, offerID, limit int) ([]models.Comment, error) {
	limit = repositories.EffectiveLimit(limit, models.CommentRequestLimit, models.CommentRequestLimit)
	return s.CommentRepo.GetCommentsByOfferID(ctx, offerID, limit)
}

// CreateComment stores the comment and notifies the offer author's devices.
// Notification failures never surface to the commenting client.
func (s *CommentService) CreateComment(ctx context.Context, offerID, authorID int, req models.CreateCommentRequest) (models.Comment, error) {
	comment := models.Comment{
		OfferID:  offerID,
		AuthorID: authorID,
		Text:     req.Text,
		Rating:   req.Rating,
	}

	created, err := s.CommentRepo.CreateComment(ctx, comment)
	if err != nil {
		return models.Comment{}, err
	}

	s.notifyOfferAuthor(ctx, offerID)

	return created, nil
}

func (s *CommentService) notifyOfferAuthor(ctx context.Context, offerID int) {
	if s.Notifier == nil {
		return
	}

	offer, err := s.OfferRepo.FindOfferByID(ctx, offerID, 0)
	if err != nil {
		return
	}

	token, err := s.UserRepo.GetDeviceToken(ctx, offer.AuthorID)
	if err != nil || token == "" {
		return
	}

	s.Notifier.NewComment(ctx, token, offer.Name)
}
