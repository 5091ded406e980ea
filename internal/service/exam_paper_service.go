package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
	"github.com/rs/zerolog/log"
)

// Per-tier targets for a full paper. Hard and Expert share one pool.
const (
	EasyTarget       = 15
	MediumTarget     = 8
	HardExpertTarget = 7

	// PageSize is the fixed page length for paginated delivery.
	PageSize = 10

	// ExamDurationMinutes is the advertised time limit for one paper.
	ExamDurationMinutes = 30
)

// PaperService assembles a difficulty-balanced, randomized question paper for
// a domain. Papers are ephemeral; they exist only in the response payload.
type PaperService interface {
	BuildPaper(domainID uint) ([]model.Question, error)
}

type paperService struct {
	questionRepo repository.QuestionRepository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPaperService builds a sampler around the given random source. The source
// is injected so tests can pin a seed; *rand.Rand is not safe for concurrent
// use, hence the mutex around every draw.
func NewPaperService(questionRepo repository.QuestionRepository, rng *rand.Rand) PaperService {
	return &paperService{questionRepo: questionRepo, rng: rng}
}

// NewRand is the production random source, seeded from the clock.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// BuildPaper draws up to 15 Easy, 8 Medium and 7 Hard/Expert questions with
// three independent randomized draws, then reshuffles the combined set so the
// tier grouping is not observable in the delivered order. A tier with too few
// questions yields a shorter paper; no backfill happens across tiers.
func (s *paperService) BuildPaper(domainID uint) ([]model.Question, error) {
	easy, err := s.drawTier(domainID, []string{model.DifficultyEasy}, EasyTarget)
	if err != nil {
		return nil, err
	}
	medium, err := s.drawTier(domainID, []string{model.DifficultyMedium}, MediumTarget)
	if err != nil {
		return nil, err
	}
	hard, err := s.drawTier(domainID, []string{model.DifficultyHard, model.DifficultyExpert}, HardExpertTarget)
	if err != nil {
		return nil, err
	}

	paper := make([]model.Question, 0, len(easy)+len(medium)+len(hard))
	paper = append(paper, easy...)
	paper = append(paper, medium...)
	paper = append(paper, hard...)

	if len(paper) == 0 {
		return nil, apperr.ErrNoQuestions
	}

	s.shuffle(paper)

	log.Debug().
		Uint("domainID", domainID).
		Int("easy", len(easy)).
		Int("medium", len(medium)).
		Int("hard_expert", len(hard)).
		Msg("Exam paper assembled")
	return paper, nil
}

// drawTier fetches the tier pool and picks up to target questions uniformly
// at random. A short pool is not an error.
func (s *paperService) drawTier(domainID uint, tiers []string, target int) ([]model.Question, error) {
	pool, err := s.questionRepo.FindByDomainAndTiers(domainID, tiers)
	if err != nil {
		return nil, fmt.Errorf("drawing %v tier: %w", tiers, err)
	}

	s.shuffle(pool)
	if len(pool) > target {
		pool = pool[:target]
	}
	return pool, nil
}

func (s *paperService) shuffle(questions []model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

// Paginate partitions the flat paper into fixed-size pages keyed "page_1",
// "page_2", ... for paginated delivery alongside the flat sequence.
func Paginate(questions []dto.ExamQuestionDTO) (map[string][]dto.ExamQuestionDTO, int) {
	totalPages := (len(questions) + PageSize - 1) / PageSize
	pages := make(map[string][]dto.ExamQuestionDTO, totalPages)
	for i := 0; i < totalPages; i++ {
		end := (i + 1) * PageSize
		if end > len(questions) {
			end = len(questions)
		}
		pages[fmt.Sprintf("page_%d", i+1)] = questions[i*PageSize : end]
	}
	return pages, totalPages
}
