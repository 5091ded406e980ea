package candidate

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/controller"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/middleware"
	"github.com/hireloop/examportal/internal/service"
)

// AcademicController manages the logged-in candidate's academic history.
type AcademicController struct {
	academicService service.AcademicService
}

func NewAcademicController(academicService service.AcademicService) *AcademicController {
	return &AcademicController{academicService: academicService}
}

func (c *AcademicController) List(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	records, err := c.academicService.List(candidateID)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

func (c *AcademicController) Add(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	var req dto.AcademicRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	record, err := c.academicService.Add(candidateID, req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

func (c *AcademicController) Update(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	recordID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid record ID format"})
		return
	}

	var req dto.AcademicRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	record, err := c.academicService.Update(candidateID, uint(recordID), req)
	if err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func (c *AcademicController) Delete(ctx *gin.Context) {
	candidateID, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication failed: No User ID found in token"})
		return
	}

	recordID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid record ID format"})
		return
	}

	if err := c.academicService.Remove(candidateID, uint(recordID)); err != nil {
		controller.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
