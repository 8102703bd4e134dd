package services

import (
	"context"
	"fmt"

	"quizhub/models"
	"quizhub/pagination"
)

// QuizDraft is the caller-supplied form state for create/update. It is
// echoed back alongside validation failures so forms can be repopulated.
type QuizDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnnotatedTip is a tip with its author's display name attached. The name
// is resolved at read time, so user renames show up immediately.
type AnnotatedTip struct {
	models.Tip
	Username string `json:"username,omitempty"`
}

// QuizDetail is the show-page view of a quiz: the quiz itself plus its tips
// annotated with author names.
type QuizDetail struct {
	models.Quiz
	Tips []AnnotatedTip `json:"tips"`
}

// QuizListing is one page of a quiz listing together with its pagination
// control and a title naming the scope.
type QuizListing struct {
	Quizzes    []models.Quiz         `json:"quizzes"`
	Pagination []pagination.PageLink `json:"pagination"`
	Search     string                `json:"search,omitempty"`
	Title      string                `json:"title"`
}

// PlayResult is the play-page view: the quiz plus whatever answer came in
// on the request, for prefilling the form.
type PlayResult struct {
	Quiz   *models.Quiz `json:"quiz"`
	Answer string       `json:"answer"`
}

// CheckResult is the outcome of an answer attempt.
type CheckResult struct {
	Quiz    *models.Quiz `json:"quiz"`
	Answer  string       `json:"answer"`
	Correct bool         `json:"correct"`
}

// QuizService orchestrates the quiz use cases over the repository and the
// username resolver. It is stateless; every call stands alone.
type QuizService struct {
	quizzes  *QuizRepository
	resolver *UsernameResolver
}

func NewQuizService(quizzes *QuizRepository, resolver *UsernameResolver) *QuizService {
	return &QuizService{quizzes: quizzes, resolver: resolver}
}

// List returns one page of quizzes, optionally narrowed by free-text search
// and/or to a single author's quizzes. baseURL seeds the pagination links
// and keeps any query parameters the request carried.
func (s *QuizService) List(ctx context.Context, search string, scopeUserID uint, page int, baseURL string) (*QuizListing, error) {
	if page < 1 {
		page = 1
	}

	filter := QuizFilter{Search: search}
	if scopeUserID != 0 {
		filter.AuthorID = scopeUserID
		filter.ByAuthor = true
	}

	quizzes, count, err := s.quizzes.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	title := "Questions"
	if scopeUserID != 0 {
		names, err := s.resolver.Resolve(ctx, []uint{scopeUserID})
		if err != nil {
			return nil, err
		}
		if name, ok := names[scopeUserID]; ok {
			title = fmt.Sprintf("Questions of %s", name)
		}
	}

	return &QuizListing{
		Quizzes:    quizzes,
		Pagination: pagination.Compute(count, QuizPageSize, page, baseURL),
		Search:     search,
		Title:      title,
	}, nil
}

// Show loads a quiz and annotates each of its tips with the author's
// username. Resolution failures fail the whole request; a tip is never
// rendered with a silently missing name.
func (s *QuizService) Show(ctx context.Context, id uint) (*QuizDetail, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, len(quiz.Tips))
	for i, tip := range quiz.Tips {
		authorIDs[i] = tip.AuthorID
	}
	usernames, err := s.resolver.Resolve(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	annotated := make([]AnnotatedTip, len(quiz.Tips))
	for i, tip := range quiz.Tips {
		annotated[i] = AnnotatedTip{Tip: tip, Username: usernames[tip.AuthorID]}
	}
	return &QuizDetail{Quiz: *quiz, Tips: annotated}, nil
}

// Create persists a new quiz authored by authorID. Validation failures come
// back as *ValidationError carrying the rejected values.
func (s *QuizService) Create(ctx context.Context, draft QuizDraft, authorID uint) (*models.Quiz, error) {
	return s.quizzes.Create(ctx, draft.Question, draft.Answer, authorID)
}

// Update replaces a quiz's question and answer.
func (s *QuizService) Update(ctx context.Context, id uint, draft QuizDraft) (*models.Quiz, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.quizzes.Update(ctx, quiz, draft.Question, draft.Answer)
}

// Delete removes a quiz and its tips. A second delete of the same id
// surfaces ErrNotFound, never a crash.
func (s *QuizService) Delete(ctx context.Context, id uint) error {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.quizzes.Delete(ctx, quiz)
}

// Play returns the quiz plus any answer passed in for prefill.
func (s *QuizService) Play(ctx context.Context, id uint, prefillAnswer string) (*PlayResult, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PlayResult{Quiz: quiz, Answer: prefillAnswer}, nil
}

// Check compares a submitted answer against the stored one.
func (s *QuizService) Check(ctx context.Context, id uint, submittedAnswer string) (*CheckResult, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Quiz:    quiz,
		Answer:  submittedAnswer,
		Correct: CheckAnswer(quiz.Answer, submittedAnswer),
	}, nil
}
