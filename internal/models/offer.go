package models

import (
	"time"
)

// Cities is the closed set of cities an offer can be published in. The
// first entry is the default for list requests that omit the city.
var Cities = []string{"Paris", "Cologne", "Brussels", "Amsterdam", "Hamburg", "Dusseldorf"}

// HousingTypes is the closed set of accepted housing kinds.
var HousingTypes = []string{"apartment", "house", "room", "hotel"}

// Facilities is the closed set of accepted facility tags.
var Facilities = []string{
	"Breakfast",
	"Air conditioning",
	"Laptop friendly workspace",
	"Baby seat",
	"Washer",
	"Towels",
	"Fridge",
}

// DefaultCity is used when a list request does not name a city.
const DefaultCity = "Paris"

const (
	MinOfferNameLength        = 10
	MaxOfferNameLength        = 100
	MinOfferDescriptionLength = 20
	MaxOfferDescriptionLength = 1024
	MinRoomCount              = 1
	MaxRoomCount              = 8
	MinGuestCount             = 1
	MaxGuestCount             = 10
	MinOfferPrice             = 100
	MaxOfferPrice             = 100000
	OfferPhotoCount           = 6

	DefaultOfferLimit = 60
	MaxOfferLimit     = 300
	PremiumOfferLimit = 3

	// NewOfferRating seeds freshly created offers so they are not shown as
	// zero-starred before the first comment arrives.
	NewOfferRating = 1
)

type Offer struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	PublishDate  time.Time  `json:"publish_date"`
	City         string     `json:"city"`
	PreviewImage string     `json:"preview_image"`
	Photos       []string   `json:"photos"`
	IsPremium    bool       `json:"is_premium"`
	HousingType  string     `json:"housing_type"`
	RoomCount    int        `json:"room_count"`
	GuestCount   int        `json:"guest_count"`
	Price        float64    `json:"price"`
	Facilities   []string   `json:"facilities"`
	AuthorID     int        `json:"author_id"`
	IsActive     bool       `json:"is_active"`
	Rating       float64    `json:"rating"`
	CommentCount int        `json:"comment_count"`
	IsFavorite   bool       `json:"is_favorite"`
	Author       *Author    `json:"author,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Author is the public slice of a user joined into the single-offer view.
// Email, password hash and timestamps are never exposed here.
type Author struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	IsPro     bool    `json:"is_pro"`
}

type CreateOfferRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PublishDate time.Time `json:"publish_date"`
	City        string    `json:"city"`
	Photos      []string  `json:"photos"`
	HousingType string    `json:"housing_type"`
	RoomCount   int       `json:"room_count"`
	GuestCount  int       `json:"guest_count"`
	Price       float64   `json:"price"`
	Facilities  []string  `json:"facilities"`
}

// UpdateOfferRequest carries a partial offer payload. Pointer fields
// distinguish "absent" from zero values. Rating and comment count are
// accepted on the wire but always replaced with the live rollup before
// the update is applied.
type UpdateOfferRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	PublishDate *string   `json:"publish_date,omitempty"`
	City        *string   `json:"city,omitempty"`
	Photos      *[]string `json:"photos,omitempty"`
	IsPremium   *bool     `json:"is_premium,omitempty"`
	HousingType *string   `json:"housing_type,omitempty"`
	RoomCount   *int      `json:"room_count,omitempty"`
	GuestCount  *int      `json:"guest_count,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Facilities  *[]string `json:"facilities,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	CommentCnt  *int      `json:"comment_count,omitempty"`
}

// OfferQuery holds the resolved parameters of a list request.
type OfferQuery struct {
	City     string
	Limit    int
	OwnerID  int // 0 means no owner filter
	ViewerID int // 0 means anonymous
}

func IsValidCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

func IsValidHousingType(ht string) bool {
	for _, h := range HousingTypes {
		if h == ht {
			return true
		}
	}
	return false
}

func IsValidFacility(tag string) bool {
	for _, f := range Facilities {
		if f == tag {
			return true
		}
	}
	return false
}
