package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/controller"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

// QuestionController manages the question bank.
type QuestionController struct {
	adminService service.AdminService
}

func NewQuestionController(adminService service.AdminService) *QuestionController {
	return &QuestionController{adminService: adminService}
}

// Create godoc
// @Summary (Admin) Add a question to the bank
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question with answer key and difficulty"
// @Success 201 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind body")
		controller.BindError(ctx, err)
		return
	}

	question, err := c.adminService.CreateQuestion(req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// List godoc
// @Summary (Admin) List questions with pagination and optional domain filter
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param domain_id query int false "Domain ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.QuestionListResponse
// @Router /admin/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	var domainID *uint
	if raw := ctx.Query("domain_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid domain_id format"})
			return
		}
		id := uint(v)
		domainID = &id
	}

	resp, err := c.adminService.ListQuestions(domainID, intQuery(ctx, "page", 1), intQuery(ctx, "limit", 10))
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *QuestionController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	question, err := c.adminService.GetQuestion(uint(id))
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

func (c *QuestionController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	question, err := c.adminService.UpdateQuestion(uint(id), req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

func (c *QuestionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	if err := c.adminService.DeleteQuestion(uint(id)); err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}
