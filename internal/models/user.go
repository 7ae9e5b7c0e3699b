package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	MinUserNameLength = 1
	MaxUserNameLength = 15
	MinPasswordLength = 6
	MaxPasswordLength = 12
)

type User struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	IsPro     bool       `json:"is_pro"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

type SignUpRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	IsPro     bool    `json:"is_pro"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// DeviceToken is a user's FCM registration token for push notifications.
type DeviceToken struct {
	UserID int    `json:"user_id"`
	Token  string `json:"token"`
}
