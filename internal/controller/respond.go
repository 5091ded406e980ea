// Package controller holds helpers shared by the candidate and admin
// controller packages, chiefly the single place where the error taxonomy is
// mapped to HTTP status codes.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/rs/zerolog/log"
)

// Error writes the response for err. Every controller funnels service errors
// through here so the same condition always yields the same status and body.
// Note ErrAlreadyAttempted and the insert-time conflict are indistinguishable
// to clients: the exam service remaps the conflict before it gets here.
func Error(ctx *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: ve.Msg})
	case errors.Is(err, apperr.ErrAlreadyAttempted):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Message: "Exam already taken.",
			Details: []string{"You have already attempted this exam."},
		})
	case errors.Is(err, apperr.ErrDomainNotAssigned):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No domain assigned to this candidate. Cannot generate exam."})
	case errors.Is(err, apperr.ErrNoQuestions):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No questions available for your domain yet."})
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Record not found"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid email or password."})
	case errors.Is(err, apperr.ErrAccountInactive):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Account is inactive. Please contact support."})
	case errors.Is(err, apperr.ErrConflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Email or Phone Number already registered."})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}

// BindError reports a gin binding failure as a 400 with the binding message.
func BindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}
