package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/controller"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/service"
)

// ResultController lets administrators inspect exam outcomes.
type ResultController struct {
	adminService service.AdminService
}

func NewResultController(adminService service.AdminService) *ResultController {
	return &ResultController{adminService: adminService}
}

// List godoc
// @Summary (Admin) Search exam results
// @Description Filter by domain name, candidate name and a date window (today, last_week, last_month, last_year or custom with start_date/end_date).
// @Tags Admin - Results
// @Produce json
// @Security BearerAuth
// @Param domain query string false "Domain name"
// @Param student_name query string false "Candidate name fragment"
// @Param date_filter query string false "today|last_week|last_month|last_year|custom"
// @Param start_date query string false "RFC3339, with date_filter=custom"
// @Param end_date query string false "RFC3339, with date_filter=custom"
// @Success 200 {array} dto.ResultRowDTO
// @Router /admin/results [get]
func (c *ResultController) List(ctx *gin.Context) {
	filter := dto.ResultSearchFilter{
		DomainName:    ctx.Query("domain"),
		CandidateName: ctx.Query("student_name"),
		DateFilter:    ctx.Query("date_filter"),
	}
	if start, ok := parseTimeQuery(ctx, "start_date"); ok {
		filter.StartDate = start
	}
	if end, ok := parseTimeQuery(ctx, "end_date"); ok {
		filter.EndDate = end
	}

	rows, err := c.adminService.SearchResults(filter)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Detail returns one result joined with candidate and domain.
func (c *ResultController) Detail(ctx *gin.Context) {
	resultID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid result ID format"})
		return
	}

	row, err := c.adminService.ResultDetail(uint(resultID))
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func parseTimeQuery(ctx *gin.Context, key string) (*time.Time, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}
