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

// ExamController exposes the three exam lifecycle endpoints. Candidate
// identity always comes from the auth middleware, never from the body.
type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// GenerateExam godoc
// @Summary (Candidate) Generate the exam paper
// @Description Builds a randomized, difficulty-balanced paper for the candidate's domain. One attempt per candidate.
// @Tags Candidate - Exam
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GeneratedExamDTO
// @Failure 400 {object} dto.ErrorResponse "No domain assigned"
// @Failure 403 {object} dto.ErrorResponse "Exam already taken"
// @Failure 404 {object} dto.ErrorResponse "No questions for domain"
// @Router /candidate/exam/generate [get]
func (c *ExamController) GenerateExam(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	exam, err := c.examService.GenerateExam(candidateID)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitExam godoc
// @Summary (Candidate) Submit exam answers
// @Description Scores the submitted answers against the live answer key and records the single attempt.
// @Tags Candidate - Exam
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.ExamSubmitRequest true "Answers"
// @Success 201 {object} dto.ExamSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Empty or malformed answers"
// @Failure 403 {object} dto.ErrorResponse "Exam already taken"
// @Router /candidate/exam/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	var req dto.ExamSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("candidateID", candidateID).Msg("SubmitExam: failed to bind body")
		controller.BindError(ctx, err)
		return
	}

	resp, err := c.examService.SubmitExam(candidateID, req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetResult godoc
// @Summary (Candidate) Fetch own exam result
// @Description Returns taken=false when no attempt exists; that is not an error.
// @Tags Candidate - Exam
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ExamResultStatusDTO
// @Router /candidate/exam/result [get]
func (c *ExamController) GetResult(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	status, err := c.examService.GetResult(candidateID)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}
