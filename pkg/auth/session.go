package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
)

// DefaultSessionTTL is how long an issued token stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// TokenConfig holds token signing configuration.
type TokenConfig struct {
	JWTSecret  []byte
	Issuer     string
	SessionTTL time.Duration
}

// Claims are the JWT claims carried by a session token. The company ID
// rides along so request handlers can scope queries without a user lookup.
type Claims struct {
	jwt.RegisteredClaims
	CompanyID string `json:"company_id"`
}

// TokenService issues and validates session tokens.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new token service.
func NewTokenService(config TokenConfig) *TokenService {
	if config.SessionTTL == 0 {
		config.SessionTTL = DefaultSessionTTL
	}
	return &TokenService{config: config}
}

// SessionTTL returns the configured token lifetime.
func (s *TokenService) SessionTTL() time.Duration {
	return s.config.SessionTTL
}

// Issue creates a signed session token for a user and their company.
func (s *TokenService) Issue(userID, companyID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTTL)),
			Issuer:    s.config.Issuer,
		},
		CompanyID: companyID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.config.JWTSecret)
}

// Validate validates a session token and returns its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.config.JWTSecret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

// Identity extracts the user and company IDs from a session token.
func (s *TokenService) Identity(tokenString string) (userID, companyID uuid.UUID, err error) {
	claims, err := s.Validate(tokenString)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	userID, err = uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrInvalidToken
	}
	companyID, err = uuid.Parse(claims.CompanyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrInvalidToken
	}
	return userID, companyID, nil
}
