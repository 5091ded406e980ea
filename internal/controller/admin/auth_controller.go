package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/controller"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Admin login
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	resp, err := c.authService.LoginAdmin(req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
