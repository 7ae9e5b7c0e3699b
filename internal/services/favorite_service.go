package services

import (
	"context"

	"stayback/internal/models"
	"stayback/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
}

func (s *FavoriteService) FindFavoriteOffers(ctx context.Context, userID int) ([]models.Offer, error) {
	return s.FavoriteRepo.FindFavoriteOffers(ctx, userID)
}

// ChangeFavoriteStatus toggles the mark and returns the user's refreshed
// favorites list. Repeating a toggle in the same direction is a no-op.
func (s *FavoriteService) ChangeFavoriteStatus(ctx context.Context, userID, offerID int, wantFavorite bool) ([]models.Offer, error) {
	if err := s.FavoriteRepo.ChangeFavoriteStatus(ctx, userID, offerID, wantFavorite); err != nil {
		return nil, err
	}
	return s.FavoriteRepo.FindFavoriteOffers(ctx, userID)
}
