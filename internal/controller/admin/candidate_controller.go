package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/controller"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/service"
)

// CandidateController is the admin view over registered candidates.
type CandidateController struct {
	adminService service.AdminService
}

func NewCandidateController(adminService service.AdminService) *CandidateController {
	return &CandidateController{adminService: adminService}
}

func (c *CandidateController) List(ctx *gin.Context) {
	page := intQuery(ctx, "page", 1)
	limit := intQuery(ctx, "limit", 10)

	resp, err := c.adminService.ListCandidates(ctx.Query("search"), page, limit)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Detail returns a candidate's profile, academic history and result (if any).
func (c *CandidateController) Detail(ctx *gin.Context) {
	candidateID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid candidate ID format"})
		return
	}

	detail, err := c.adminService.CandidateDetail(uint(candidateID))
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

func intQuery(ctx *gin.Context, key string, fallback int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
