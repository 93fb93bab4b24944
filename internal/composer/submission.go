package composer

import (
	"context"
	"strings"
	"sync"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

// Input is what the visitor typed into the review form.
type Input struct {
	ClientName      string
	ClientEmail     string
	ProjectType     string
	OptionalComment string
	Rating          int
}

// SubmissionForm drives generate-then-publish. Once published the form is
// terminal and refuses further actions.
type SubmissionForm struct {
	api SubmissionAPI

	mu         sync.Mutex
	input      Input
	hovered    int
	generated  string
	generating bool
	publishing bool
	submitted  bool
}

func NewSubmissionForm(api SubmissionAPI) *SubmissionForm {
	return &SubmissionForm{api: api}
}

func (f *SubmissionForm) SetInput(in Input) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = in
}

func (f *SubmissionForm) Input() Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Hover records the star under the pointer; 0 clears it. It never changes
// the selected rating.
func (f *SubmissionForm) Hover(star int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if star < 0 || star > review.MaxRating {
		star = 0
	}
	f.hovered = star
}

// DisplayRating is the number of stars to fill.
func (f *SubmissionForm) DisplayRating() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hovered > 0 {
		return f.hovered
	}
	return f.input.Rating
}

func (f *SubmissionForm) Generated() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generated
}

func (f *SubmissionForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generating || f.publishing
}

func (f *SubmissionForm) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

func (in Input) complete() bool {
	return strings.TrimSpace(in.ClientName) != "" &&
		strings.TrimSpace(in.ProjectType) != "" &&
		in.Rating >= review.MinRating && in.Rating <= review.MaxRating
}

// Generate asks for review text. On failure the previously generated text,
// if any, is kept.
func (f *SubmissionForm) Generate(ctx context.Context) (string, error) {
	f.mu.Lock()
	switch {
	case f.submitted:
		f.mu.Unlock()
		return "", ErrSubmitted
	case f.generating:
		f.mu.Unlock()
		return "", ErrBusy
	case !f.input.complete():
		f.mu.Unlock()
		return "", &InputError{Message: "Please fill in your name, project type, and rating"}
	}
	in := f.input
	f.generating = true
	f.mu.Unlock()

	resp, err := f.api.DraftReview(ctx, models.DraftReviewRequest{
		ClientName:      in.ClientName,
		ProjectType:     in.ProjectType,
		Rating:          in.Rating,
		OptionalComment: in.OptionalComment,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.generating = false
	if err != nil {
		return "", err
	}
	f.generated = resp.Review
	return resp.Review, nil
}

// Publish stores the current input with the generated text and moves the
// form to its submitted state.
func (f *SubmissionForm) Publish(ctx context.Context) (*models.Review, error) {
	f.mu.Lock()
	switch {
	case f.submitted:
		f.mu.Unlock()
		return nil, ErrSubmitted
	case f.publishing:
		f.mu.Unlock()
		return nil, ErrBusy
	case strings.TrimSpace(f.generated) == "":
		f.mu.Unlock()
		return nil, &InputError{Message: "Please generate a review first"}
	}
	in, generated := f.input, f.generated
	f.publishing = true
	f.mu.Unlock()

	created, err := f.api.PublishReview(ctx, models.PublishReviewRequest{
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ProjectType:     in.ProjectType,
		Rating:          in.Rating,
		OptionalComment: in.OptionalComment,
		GeneratedReview: generated,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.publishing = false
	if err != nil {
		return nil, err
	}
	f.submitted = true
	return created, nil
}
