package candidate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/controller"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/middleware"
	"github.com/hireloop/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new candidate
// @Tags Candidate - Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterCandidateRequest true "Candidate details"
// @Success 201 {object} dto.RegisterCandidateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email or phone already registered"
// @Router /candidate/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	resp, err := c.authService.RegisterCandidate(req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Candidate login
// @Tags Candidate - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Account inactive"
// @Router /candidate/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	resp, err := c.authService.LoginCandidate(req)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("Candidate login failed")
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me returns the logged-in candidate's own profile.
func (c *AuthController) Me(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	profile, err := c.authService.GetCandidateProfile(candidateID)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Dropdowns serves the domain list for the registration form.
func (c *AuthController) Dropdowns(ctx *gin.Context) {
	resp, err := c.authService.ListDomains()
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
