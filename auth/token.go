package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateAccessToken issues the short-lived credential carried on every request.
func GenerateAccessToken(user models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken issues the longer-lived credential used to mint new
// access tokens. It carries only the user id.
func GenerateRefreshToken(userID uint, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateTokenPair issues both tokens and persists the refresh token on the
// user record, invalidating any previously issued refresh token.
func GenerateTokenPair(db *gorm.DB, cfg *config.Config, user models.User) (string, string, error) {
	accessToken, err := GenerateAccessToken(user, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := GenerateRefreshToken(user.ID, cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("refresh_token", refreshToken).Error; err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserIDFromClaims extracts the user id claim. JWT numbers decode as float64.
func UserIDFromClaims(claims jwt.MapClaims) (uint, error) {
	raw, exists := claims["user_id"]
	if !exists {
		return 0, ErrInvalidToken
	}
	id, ok := raw.(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
