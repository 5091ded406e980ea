package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/auth"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/rs/zerolog/log"
)

// Context keys set by the auth middlewares.
const (
	ContextCandidateID = "candidate_id"
	ContextAdminID     = "admin_id"
)

// CandidateAuth requires a valid candidate bearer token and attaches the
// candidate id to the request context.
func CandidateAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := parseBearer(ctx, tokens)
		if !ok {
			return
		}
		if claims.Role != auth.RoleCandidate || claims.CandidateID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: no candidate identity in token"})
			return
		}
		ctx.Set(ContextCandidateID, claims.CandidateID)
		ctx.Next()
	}
}

// AdminAuth requires a valid admin bearer token.
func AdminAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := parseBearer(ctx, tokens)
		if !ok {
			return
		}
		if claims.Role != auth.RoleAdmin || claims.AdminID == 0 {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		ctx.Set(ContextAdminID, claims.AdminID)
		ctx.Next()
	}
}

// CandidateID reads the authenticated candidate id set by CandidateAuth.
func CandidateID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get(ContextCandidateID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func parseBearer(ctx *gin.Context, tokens *auth.TokenIssuer) (*auth.Claims, bool) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
		return nil, false
	}
	claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Rejected invalid token")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
		return nil, false
	}
	return claims, true
}
