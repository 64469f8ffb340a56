package myjwt

import (
	"errors"
	"time"

	"LiveDesk/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims is the identity contract shared with the external auth provider:
// tokens are issued elsewhere, this package only verifies them.
type CustomClaims struct {
	UserId string `json:"user_id"`
	TeamId string `json:"team_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(userID string, teamID string, role string, ttl time.Duration) (string, error) {
	conf := config.GetConfig()
	key := conf.JwtConfig.Key
	if key == "" {
		return "", errors.New("jwt key is empty")
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	issuer := conf.JwtConfig.Issuer
	if issuer == "" {
		issuer = conf.MainConfig.AppName
	}

	claims := CustomClaims{
		UserId: userID,
		TeamId: teamID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	conf := config.GetConfig()
	key := conf.JwtConfig.Key
	if key == "" {
		return nil, errors.New("jwt key is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TeamId == "" {
		return nil, errors.New("token missing team scope")
	}
	return claims, nil
}
