package services

import (
	"context"
	"time"

	"stayback/internal/models"
	"stayback/internal/repositories"
)

type OfferService struct {
	OfferRepo *repositories.OfferRepository
}

// FindOffers resolves the query defaults before hitting storage: the
// default city when none is given and the clamped result limit.
func (s *OfferService) FindOffers(ctx context.Context, q models.OfferQuery) ([]models.Offer, error) {
	if q.City == "" {
		q.City = models.DefaultCity
	}
	q.Limit = repositories.EffectiveLimit(q.Limit, models.DefaultOfferLimit, models.MaxOfferLimit)
	return s.OfferRepo.FindOffers(ctx, q)
}

func (s *OfferService) FindOfferByID(ctx context.Context, offerID, viewerID int) (models.Offer, error) {
	return s.OfferRepo.FindOfferByID(ctx, offerID, viewerID)
}

func (s *OfferService) FindPremiumOffers(ctx context.Context, city string, viewerID int) ([]models.Offer, error) {
	return s.OfferRepo.FindPremiumOffers(ctx, city, models.PremiumOfferLimit, viewerID)
}

// CreateOffer persists a new offer with its computed-field seeds. The
// returned record is the raw created row; callers wanting the enriched
// shape re-fetch through FindOfferByID.
func (s *OfferService) CreateOffer(ctx context.Context, req models.CreateOfferRequest, authorID int) (models.Offer, error) {
	offer := models.Offer{
		Name:         req.Name,
		Description:  req.Description,
		PublishDate:  req.PublishDate,
		City:         req.City,
		Photos:       req.Photos,
		HousingType:  req.HousingType,
		RoomCount:    req.RoomCount,
		GuestCount:   req.GuestCount,
		Price:        req.Price,
		Facilities:   req.Facilities,
		AuthorID:     authorID,
		IsPremium:    false,
		IsActive:     true,
		Rating:       models.NewOfferRating,
		CommentCount: 0,
	}
	if offer.PublishDate.IsZero() {
		offer.PublishDate = time.Now()
	}
	if len(offer.Photos) > 0 {
		offer.PreviewImage = offer.Photos[0]
	}
	return s.OfferRepo.CreateOffer(ctx, offer)
}

// UpdateOffer applies a partial update. The live comment rollup is read
// first and forced into the persisted row, so rating and comment count in
// the client payload can never take effect. Returns the re-aggregated
// single-offer projection.
func (s *OfferService) UpdateOffer(ctx context.Context, offerID int, req models.UpdateOfferRequest, viewerID int) (models.Offer, error) {
	current, err := s.OfferRepo.FindOfferByID(ctx, offerID, viewerID)
	if err != nil {
		return models.Offer{}, err
	}

	if err := s.OfferRepo.UpdateOffer(ctx, offerID, req, current.Rating, current.CommentCount); err != nil {
		return models.Offer{}, err
	}

	return s.OfferRepo.FindOfferByID(ctx, offerID, viewerID)
}

func (s *OfferService) DeleteOffer(ctx context.Context, offerID int) error {
	return s.OfferRepo.DeleteOffer(ctx, offerID)
}

func (s *OfferService) Exists(ctx context.Context, offerID int) (bool, error) {
	return s.OfferRepo.Exists(ctx, offerID)
}

func (s *OfferService) IsOwner(ctx context.Context, offerID, userID int) (bool, error) {
	return s.OfferRepo.IsOwner(ctx, offerID, userID)
}
