// Package auth issues and verifies the portal's bearer tokens.
//
// The candidate identity lives in exactly one claim, candidate_id; nothing
// else in the system probes alternative claim names.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hireloop/examportal/config"
	"github.com/hireloop/examportal/internal/model"
)

// Roles embedded in tokens.
const (
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
)

// Claims is the single token payload for both candidates and admins.
type Claims struct {
	CandidateID uint   `json:"candidate_id,omitempty"`
	AdminID     uint   `json:"admin_id,omitempty"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
	}
}

func (t *TokenIssuer) IssueCandidate(candidate *model.Candidate) (string, error) {
	return t.sign(Claims{
		CandidateID: candidate.ID,
		Role:        RoleCandidate,
		Email:       candidate.Email,
	})
}

func (t *TokenIssuer) IssueAdmin(admin *model.Admin) (string, error) {
	return t.sign(Claims{
		AdminID: admin.ID,
		Role:    RoleAdmin,
	})
}

func (t *TokenIssuer) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the claims.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &claims, nil
}
