package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Identity struct {
	AdminID int64
	Email   string
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type IdentityProvider struct {
	cfg Config
}

func NewIdentityProvider(cfg Config) *IdentityProvider {
	return &IdentityProvider{cfg: cfg}
}

func (p *IdentityProvider) IssueToken(adminID int64, email string) (string, error) {
	if p.cfg.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.cfg.TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("err signing token, %v", err)
	}
	return signed, nil
}

// GetIdentity verifies signature and expiry and returns the admin identity.
func (p *IdentityProvider) GetIdentity(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(p.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	var adminID int64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &adminID); err != nil {
		return nil, fmt.Errorf("malformed subject claim")
	}
	return &Identity{AdminID: adminID, Email: claims.Email}, nil
}

// GenerateOTP returns a 6-digit numeric code from crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("err generating otp, %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
