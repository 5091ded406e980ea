package service

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
)

type fakeQuestionRepo struct {
	byTier map[string][]model.Question
	key    map[uint]string
	err    error
}

func (f *fakeQuestionRepo) FindByDomainAndTiers(domainID uint, tiers []string) ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Question
	for _, tier := range tiers {
		out = append(out, f.byTier[tier]...)
	}
	return out, nil
}

func (f *fakeQuestionRepo) CorrectOptionsByIDs(ids []uint) (map[uint]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[uint]string, len(ids))
	for _, id := range ids {
		if opt, ok := f.key[id]; ok {
			out[id] = opt
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Create(*model.Question) error { return nil }
func (f *fakeQuestionRepo) Update(*model.Question) error { return nil }
func (f *fakeQuestionRepo) Delete(uint) error            { return nil }

func (f *fakeQuestionRepo) FindByID(uint) (*model.Question, error) {
	return nil, apperr.ErrNotFound
}
func (f *fakeQuestionRepo) List(*uint, int, int) ([]model.Question, int64, error) {
	return nil, 0, nil
}

func tierQuestions(tier string, startID uint, n int) []model.Question {
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.Question{
			ID:              startID + uint(i),
			DomainID:        1,
			QuestionText:    fmt.Sprintf("%s question %d", tier, i+1),
			DifficultyLevel: tier,
		}
	}
	return questions
}

func newTestSampler(repo *fakeQuestionRepo, seed int64) PaperService {
	return NewPaperService(repo, rand.New(rand.NewSource(seed)))
}

func TestBuildPaperFullPool(t *testing.T) {
	repo := &fakeQuestionRepo{byTier: map[string][]model.Question{
		model.DifficultyEasy:   tierQuestions(model.DifficultyEasy, 100, 40),
		model.DifficultyMedium: tierQuestions(model.DifficultyMedium, 200, 20),
		model.DifficultyHard:   tierQuestions(model.DifficultyHard, 300, 10),
		model.DifficultyExpert: tierQuestions(model.DifficultyExpert, 400, 10),
	}}

	paper, err := newTestSampler(repo, 1).BuildPaper(1)
	if err != nil {
		t.Fatalf("BuildPaper: %v", err)
	}
	if len(paper) != 30 {
		t.Fatalf("paper size = %d, want 30", len(paper))
	}

	counts := map[string]int{}
	seen := map[uint]bool{}
	for _, q := range paper {
		if seen[q.ID] {
			t.Fatalf("question %d appears twice", q.ID)
		}
		seen[q.ID] = true
		tier := q.DifficultyLevel
		if tier == model.DifficultyExpert {
			tier = model.DifficultyHard
		}
		counts[tier]++
	}
	if counts[model.DifficultyEasy] != EasyTarget {
		t.Errorf("easy count = %d, want %d", counts[model.DifficultyEasy], EasyTarget)
	}
	if counts[model.DifficultyMedium] != MediumTarget {
		t.Errorf("medium count = %d, want %d", counts[model.DifficultyMedium], MediumTarget)
	}
	if counts[model.DifficultyHard] != HardExpertTarget {
		t.Errorf("hard/expert count = %d, want %d", counts[model.DifficultyHard], HardExpertTarget)
	}
}

func TestBuildPaperShortTiers(t *testing.T) {
	tests := []struct {
		name  string
		pool  map[string][]model.Question
		total int
	}{
		{
			name: "only five easy",
			pool: map[string][]model.Question{
				model.DifficultyEasy: tierQuestions(model.DifficultyEasy, 1, 5),
			},
			total: 5,
		},
		{
			name: "short everywhere",
			pool: map[string][]model.Question{
				model.DifficultyEasy:   tierQuestions(model.DifficultyEasy, 1, 10),
				model.DifficultyMedium: tierQuestions(model.DifficultyMedium, 50, 3),
				model.DifficultyExpert: tierQuestions(model.DifficultyExpert, 90, 2),
			},
			total: 15,
		},
		{
			name: "hard and expert pooled",
			pool: map[string][]model.Question{
				model.DifficultyHard:   tierQuestions(model.DifficultyHard, 1, 4),
				model.DifficultyExpert: tierQuestions(model.DifficultyExpert, 50, 4),
			},
			total: 7,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paper, err := newTestSampler(&fakeQuestionRepo{byTier: tc.pool}, 7).BuildPaper(1)
			if err != nil {
				t.Fatalf("BuildPaper: %v", err)
			}
			if len(paper) != tc.total {
				t.Fatalf("paper size = %d, want %d", len(paper), tc.total)
			}
		})
	}
}

func TestBuildPaperEmptyDomain(t *testing.T) {
	_, err := newTestSampler(&fakeQuestionRepo{byTier: map[string][]model.Question{}}, 3).BuildPaper(1)
	if !errors.Is(err, apperr.ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestBuildPaperRepositoryFailure(t *testing.T) {
	repoErr := apperr.Repositoryf("fetching domain questions", errors.New("connection refused"))
	_, err := newTestSampler(&fakeQuestionRepo{err: repoErr}, 3).BuildPaper(1)
	if !errors.Is(err, apperr.ErrRepository) {
		t.Fatalf("err = %v, want ErrRepository", err)
	}
}

func TestBuildPaperDeterministicForSeed(t *testing.T) {
	pool := map[string][]model.Question{
		model.DifficultyEasy:   tierQuestions(model.DifficultyEasy, 100, 30),
		model.DifficultyMedium: tierQuestions(model.DifficultyMedium, 200, 15),
		model.DifficultyHard:   tierQuestions(model.DifficultyHard, 300, 15),
	}

	first, err := newTestSampler(&fakeQuestionRepo{byTier: pool}, 42).BuildPaper(1)
	if err != nil {
		t.Fatalf("BuildPaper: %v", err)
	}
	second, err := newTestSampler(&fakeQuestionRepo{byTier: pool}, 42).BuildPaper(1)
	if err != nil {
		t.Fatalf("BuildPaper: %v", err)
	}
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatal("same seed produced different papers")
	}

	third, err := newTestSampler(&fakeQuestionRepo{byTier: pool}, 43).BuildPaper(1)
	if err != nil {
		t.Fatalf("BuildPaper: %v", err)
	}
	if reflect.DeepEqual(ids(first), ids(third)) {
		t.Fatal("different seeds produced identical papers")
	}
}

// The final shuffle must hide the tier grouping the three draws produce.
func TestBuildPaperReshufflesAcrossTiers(t *testing.T) {
	pool := map[string][]model.Question{
		model.DifficultyEasy:   tierQuestions(model.DifficultyEasy, 100, 15),
		model.DifficultyMedium: tierQuestions(model.DifficultyMedium, 200, 8),
		model.DifficultyHard:   tierQuestions(model.DifficultyHard, 300, 7),
	}

	// A tier-grouped order has at most two tier boundaries; interleaving
	// produces more. Require it for every seed tried.
	for seed := int64(0); seed < 5; seed++ {
		paper, err := newTestSampler(&fakeQuestionRepo{byTier: pool}, seed).BuildPaper(1)
		if err != nil {
			t.Fatalf("BuildPaper: %v", err)
		}
		if boundaries(paper) <= 2 {
			t.Fatalf("seed %d delivered a tier-grouped paper", seed)
		}
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		questions int
		pages     int
		lastLen   int
	}{
		{name: "thirty questions", questions: 30, pages: 3, lastLen: 10},
		{name: "partial last page", questions: 25, pages: 3, lastLen: 5},
		{name: "single short page", questions: 4, pages: 1, lastLen: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flat := make([]dto.ExamQuestionDTO, tc.questions)
			for i := range flat {
				flat[i] = dto.ExamQuestionDTO{QuestionID: uint(i + 1)}
			}

			pages, totalPages := Paginate(flat)
			if totalPages != tc.pages {
				t.Fatalf("totalPages = %d, want %d", totalPages, tc.pages)
			}
			if len(pages) != tc.pages {
				t.Fatalf("map has %d pages, want %d", len(pages), tc.pages)
			}
			last := pages[fmt.Sprintf("page_%d", tc.pages)]
			if len(last) != tc.lastLen {
				t.Fatalf("last page length = %d, want %d", len(last), tc.lastLen)
			}
			// Pages concatenated in order must equal the flat sequence.
			var rejoined []dto.ExamQuestionDTO
			for i := 1; i <= tc.pages; i++ {
				rejoined = append(rejoined, pages[fmt.Sprintf("page_%d", i)]...)
			}
			if !reflect.DeepEqual(rejoined, flat) {
				t.Fatal("paginated pages do not rejoin into the flat order")
			}
		})
	}
}

func ids(questions []model.Question) []uint {
	out := make([]uint, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func boundaries(questions []model.Question) int {
	n := 0
	for i := 1; i < len(questions); i++ {
		if questions[i].DifficultyLevel != questions[i-1].DifficultyLevel {
			n++
		}
	}
	return n
}
