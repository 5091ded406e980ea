package candidate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/middleware"
)

type stubExamService struct {
	generated *dto.GeneratedExamDTO
	submitted *dto.ExamSubmitResponse
	status    *dto.ExamResultStatusDTO
	err       error
}

func (s *stubExamService) GenerateExam(uint) (*dto.GeneratedExamDTO, error) {
	return s.generated, s.err
}

func (s *stubExamService) SubmitExam(uint, dto.ExamSubmitRequest) (*dto.ExamSubmitResponse, error) {
	return s.submitted, s.err
}

func (s *stubExamService) GetResult(uint) (*dto.ExamResultStatusDTO, error) {
	return s.status, s.err
}

func examRouter(svc *stubExamService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewExamController(svc)

	r := gin.New()
	asCandidate := func(ctx *gin.Context) { ctx.Set(middleware.ContextCandidateID, uint(7)) }
	r.GET("/exam/generate", asCandidate, ctrl.GenerateExam)
	r.POST("/exam/submit", asCandidate, ctrl.SubmitExam)
	r.GET("/exam/result", asCandidate, ctrl.GetResult)
	return r
}

func TestGenerateExamStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		svc        *stubExamService
		wantStatus int
	}{
		{
			name: "success",
			svc: &stubExamService{generated: &dto.GeneratedExamDTO{
				ExamMeta: dto.ExamMetaDTO{TotalQuestions: 30, DurationMinutes: 30, DomainID: 2, TotalPages: 3},
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "already attempted",
			svc:        &stubExamService{err: apperr.ErrAlreadyAttempted},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no domain assigned",
			svc:        &stubExamService{err: apperr.ErrDomainNotAssigned},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty question pool",
			svc:        &stubExamService{err: apperr.ErrNoQuestions},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "repository failure",
			svc:        &stubExamService{err: apperr.Repositoryf("fetch", http.ErrServerClosed)},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/exam/generate", nil)
			examRouter(tc.svc).ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestSubmitExam(t *testing.T) {
	submitted := &dto.ExamSubmitResponse{
		Message: "Exam submitted successfully",
		Result:  dto.ExamResultDTO{ResultID: 4, TotalQuestions: 20, CorrectAnswers: 13, WrongAnswers: 7, Score: 65, Status: "Pass"},
	}
	body := `{"answers":[{"question_id":1,"selected_option":"A"}]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/exam/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	examRouter(&stubExamService{submitted: submitted}).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	var resp dto.ExamSubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Result != submitted.Result {
		t.Fatalf("result = %+v, want %+v", resp.Result, submitted.Result)
	}
}

func TestSubmitExamRejectsMalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty answers array", body: `{"answers":[]}`},
		{name: "missing answers", body: `{}`},
		{name: "option outside enum", body: `{"answers":[{"question_id":1,"selected_option":"Z"}]}`},
		{name: "not json", body: `answers=1`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/exam/submit", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			examRouter(&stubExamService{}).ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestSubmitExamConflictLooksLikeAlreadyAttempted(t *testing.T) {
	w := httptest.NewRecorder()
	body := `{"answers":[{"question_id":1,"selected_option":"A"}]}`
	req := httptest.NewRequest(http.MethodPost, "/exam/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	examRouter(&stubExamService{err: apperr.ErrAlreadyAttempted}).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already") {
		t.Fatalf("body %q should mention the attempt", w.Body.String())
	}
}

func TestGetResultStatuses(t *testing.T) {
	t.Run("not taken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/exam/result", nil)
		examRouter(&stubExamService{status: &dto.ExamResultStatusDTO{Taken: false}}).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp dto.ExamResultStatusDTO
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Taken || resp.Data != nil {
			t.Fatalf("resp = %+v, want taken=false with no data", resp)
		}
	})

	t.Run("taken", func(t *testing.T) {
		data := &dto.ExamResultDTO{ResultID: 9, TotalQuestions: 20, CorrectAnswers: 12, WrongAnswers: 8, Score: 60, Status: "Pass"}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/exam/result", nil)
		examRouter(&stubExamService{status: &dto.ExamResultStatusDTO{Taken: true, Data: data}}).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp dto.ExamResultStatusDTO
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if !resp.Taken || resp.Data == nil || *resp.Data != *data {
			t.Fatalf("resp = %+v, want taken=true matching %+v", resp, data)
		}
	})
}

func TestExamEndpointsRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewExamController(&stubExamService{})
	r := gin.New()
	r.GET("/exam/generate", ctrl.GenerateExam)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exam/generate", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
