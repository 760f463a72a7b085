package dto

import (
	"time"

	"prism/infras/jwt"
	userDto "prism/internal/domains/user/model/dto"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	TokenType    string               `json:"token_type"`
	ExpiresIn    int64                `json:"expires_in"`
	User         userDto.UserResponse `json:"user"`
}

func (r *LoginResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// VerifyPinRequest confirms the caller's security pin before a sensitive
// operation such as cancelling a chalan.
type VerifyPinRequest struct {
	SecurityPin string `json:"security_pin" validate:"required,len=4,numeric"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
