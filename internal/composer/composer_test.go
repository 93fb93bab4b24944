package composer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/client"
	"portfolio-backend/internal/composer"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
	"portfolio-backend/internal/testutil"
)

func newAPI(t *testing.T, env *testutil.Env) *client.Client {
	t.Helper()
	api := client.New(env.Serve(t).URL)
	api.SetToken(testutil.Token("admin-1", "admin@example.com", time.Hour))
	return api
}

func TestSubmissionForm_EndToEnd(t *testing.T) {
	env := testutil.NewEnv(false)
	api := newAPI(t, env)
	form := composer.NewSubmissionForm(api)

	form.SetInput(composer.Input{ClientName: "Jane Doe", ProjectType: "Landing Page", Rating: 5})

	text, err := form.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, env.Generator.Text, text)

	created, err := form.Publish(context.Background())
	require.NoError(t, err)
	assert.True(t, form.Submitted())
	require.NotNil(t, created.Rating)
	assert.Equal(t, 5, *created.Rating)
	assert.Equal(t, "Excellent", created.OverallExperience)
	assert.Equal(t, "Yes", created.WouldRecommend)

	testimonials, err := api.Testimonials(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Jane Doe", testimonials[0].ClientName)

	_, err = form.Generate(context.Background())
	assert.ErrorIs(t, err, composer.ErrSubmitted)
	_, err = form.Publish(context.Background())
	assert.ErrorIs(t, err, composer.ErrSubmitted)
}

func TestSubmissionForm_ValidatesLocally(t *testing.T) {
	env := testutil.NewEnv(true)
	form := composer.NewSubmissionForm(newAPI(t, env))

	form.SetInput(composer.Input{ClientName: "Jane", ProjectType: "Landing Page", Rating: 0})
	_, err := form.Generate(context.Background())

	var inputErr *composer.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "Please fill in your name, project type, and rating", inputErr.Message)
	assert.Empty(t, env.Generator.Calls(), "no request is sent")

	_, err = form.Publish(context.Background())
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "Please generate a review first", inputErr.Message)
}

func TestSubmissionForm_KeepsTextOnFailure(t *testing.T) {
	env := testutil.NewEnv(true)
	form := composer.NewSubmissionForm(newAPI(t, env))
	form.SetInput(composer.Input{ClientName: "Jane", ProjectType: "Other", Rating: 4})

	first, err := form.Generate(context.Background())
	require.NoError(t, err)

	env.Generator.Fail(errors.New("upstream down"))
	_, err = form.Generate(context.Background())
	require.Error(t, err)

	assert.Equal(t, first, form.Generated())
	assert.False(t, form.Busy())
}

func TestSubmissionForm_Hover(t *testing.T) {
	form := composer.NewSubmissionForm(nil)
	form.SetInput(composer.Input{Rating: 2})

	form.Hover(4)
	assert.Equal(t, 4, form.DisplayRating())
	assert.Equal(t, 2, form.Input().Rating)

	form.Hover(0)
	assert.Equal(t, 2, form.DisplayRating())
}

type blockingGateway struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGateway) GenerateReview(ctx context.Context, _ review.Fields) (string, error) {
	close(g.started)
	<-g.release
	return "Done.", nil
}

type memoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *memoryClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *memoryClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func TestGeneratorWidget_OneGenerationAtATime(t *testing.T) {
	gateway := &blockingGateway{started: make(chan struct{}), release: make(chan struct{})}
	widget := composer.NewGeneratorWidget(gateway, &memoryClipboard{})
	widget.Select(review.FromSelections("Excellent", "Portfolio Site", "Very Fast", "Excellent", "", "Yes"))

	done := make(chan error, 1)
	go func() {
		_, err := widget.Generate(context.Background())
		done <- err
	}()
	<-gateway.started

	assert.True(t, widget.Busy())
	_, err := widget.Generate(context.Background())
	assert.ErrorIs(t, err, composer.ErrBusy)

	close(gateway.release)
	require.NoError(t, <-done)
	assert.Equal(t, "Done.", widget.Generated())
	assert.False(t, widget.Busy())
}

func TestGeneratorWidget_CopyIndicatorClears(t *testing.T) {
	env := testutil.NewEnv(true)
	clip := &memoryClipboard{}
	widget := composer.NewGeneratorWidget(newAPI(t, env), clip, composer.WithCopiedFor(50*time.Millisecond))

	assert.ErrorIs(t, widget.Copy(), composer.ErrNothingToCopy)

	widget.Select(review.FromSelections("Good", "E-commerce", "On Time", "Good", "Nice checkout", "Yes"))
	text, err := widget.Generate(context.Background())
	require.NoError(t, err)

	require.NoError(t, widget.Copy())
	assert.Equal(t, text, clip.Text())
	assert.True(t, widget.Copied())

	assert.Eventually(t, func() bool { return !widget.Copied() }, time.Second, 10*time.Millisecond)

	reviews, err := env.Store.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews, "the widget never persists")
}

func TestGeneratorWidget_RequiresAllSelections(t *testing.T) {
	widget := composer.NewGeneratorWidget(nil, &memoryClipboard{})
	widget.Select(review.FromSelections("Good", "", "On Time", "Good", "", "Yes"))

	_, err := widget.Generate(context.Background())
	var inputErr *composer.InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestAdminBoard_StatusRevertsOnFailure(t *testing.T) {
	env := testutil.NewEnv(true)
	order := env.Store.AddOrder("Ann", models.OrderStatusPending)
	board := composer.NewAdminBoard(newAPI(t, env), nil)
	require.NoError(t, board.Load(context.Background()))

	require.NoError(t, board.SetStatus(context.Background(), order.ID, models.OrderStatusInProgress))
	assert.Equal(t, models.OrderStatusInProgress, board.Orders()[0].Status)
	assert.EqualValues(t, 2, board.Orders()[0].Version)

	env.Store.FailUpdates(errors.New("write failed"))
	err := board.SetStatus(context.Background(), order.ID, models.OrderStatusCompleted)
	require.Error(t, err)

	assert.Equal(t, models.OrderStatusInProgress, board.Orders()[0].Status, "reverted to the last confirmed value")
	persisted, err := env.Store.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, persisted[0].Status)
}

func TestAdminBoard_StaleVersionConflicts(t *testing.T) {
	env := testutil.NewEnv(true)
	order := env.Store.AddOrder("Ann", models.OrderStatusPending)
	board := composer.NewAdminBoard(newAPI(t, env), nil)
	require.NoError(t, board.Load(context.Background()))

	// another administrator writes first
	_, err := env.Store.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusCancelled, nil)
	require.NoError(t, err)

	err = board.SetStatus(context.Background(), order.ID, models.OrderStatusCompleted)
	assert.Equal(t, 409, client.StatusOf(err))
	assert.Equal(t, models.OrderStatusPending, board.Orders()[0].Status)

	require.NoError(t, board.Load(context.Background()))
	assert.Equal(t, models.OrderStatusCancelled, board.Orders()[0].Status)
}

func TestAdminBoard_Notes(t *testing.T) {
	env := testutil.NewEnv(true)
	order := env.Store.AddOrder("Ann", models.OrderStatusPending)
	board := composer.NewAdminBoard(newAPI(t, env), nil)
	require.NoError(t, board.Load(context.Background()))

	require.NoError(t, board.BeginNotes(order.ID))
	board.EditNotes("discarded")
	board.CancelNotes()
	_, _, editing := board.Editing()
	assert.False(t, editing)
	assert.Nil(t, board.Orders()[0].AdminNotes)

	require.NoError(t, board.BeginNotes(order.ID))
	board.EditNotes("Send preview Monday")
	require.NoError(t, board.SaveNotes(context.Background()))

	require.NotNil(t, board.Orders()[0].AdminNotes)
	assert.Equal(t, "Send preview Monday", *board.Orders()[0].AdminNotes)
	_, _, editing = board.Editing()
	assert.False(t, editing)
}

func TestAdminBoard_DeleteRecomputesCounters(t *testing.T) {
	env := testutil.NewEnv(true)
	pending := env.Store.AddOrder("Ann", models.OrderStatusPending)
	env.Store.AddOrder("Ben", models.OrderStatusCompleted)

	answers := []bool{false, true}
	confirm := func(string) bool {
		answer := answers[0]
		answers = answers[1:]
		return answer
	}
	board := composer.NewAdminBoard(newAPI(t, env), confirm)
	require.NoError(t, board.Load(context.Background()))
	assert.Equal(t, 1, board.Stats().PendingOrders)

	assert.ErrorIs(t, board.DeleteOrder(context.Background(), pending.ID), composer.ErrCancelled)
	assert.Len(t, board.Orders(), 2)

	require.NoError(t, board.DeleteOrder(context.Background(), pending.ID))
	assert.Len(t, board.Orders(), 1)
	assert.Equal(t, models.DashboardStats{TotalOrders: 1, CompletedOrders: 1}, board.Stats())

	require.NoError(t, board.Load(context.Background()))
	assert.Len(t, board.Orders(), 1, "gone from subsequent loads")
}

func TestAdminBoard_ReviewsModerationAndDelete(t *testing.T) {
	env := testutil.NewEnv(true)
	api := newAPI(t, env)
	created, err := api.PublishReview(context.Background(), models.PublishReviewRequest{
		ClientName: "Jane", ProjectType: "Other", Rating: 4, GeneratedReview: "Lovely.",
	})
	require.NoError(t, err)

	board := composer.NewAdminBoard(api, func(string) bool { return true })
	require.NoError(t, board.Load(context.Background()))
	require.Len(t, board.Reviews(), 1)

	require.NoError(t, board.Moderate(context.Background(), created.ID, models.ReviewStatusApproved))
	assert.Equal(t, models.ReviewStatusApproved, board.Reviews()[0].Status)

	require.NoError(t, board.DeleteReview(context.Background(), created.ID))
	assert.Empty(t, board.Reviews())
	assert.Equal(t, 0, board.Stats().TotalReviews)
}

func TestAdminBoard_UnauthorizedDropsNotesEdit(t *testing.T) {
	env := testutil.NewEnv(true)
	order := env.Store.AddOrder("Ann", models.OrderStatusPending)
	api := newAPI(t, env)
	board := composer.NewAdminBoard(api, nil)
	require.NoError(t, board.Load(context.Background()))

	require.NoError(t, board.BeginNotes(order.ID))
	board.EditNotes("unsaved")

	api.SetToken(testutil.Token("admin-1", "admin@example.com", -time.Minute))
	err := board.SaveNotes(context.Background())

	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.True(t, board.NeedsLogin())
	_, _, editing := board.Editing()
	assert.False(t, editing)
}

func TestAdminBoard_SectionErrors(t *testing.T) {
	env := testutil.NewEnv(true)
	env.Store.AddOrder("Ann", models.OrderStatusPending)
	env.Store.ListOrdersErr = errors.New("orders table locked")
	board := composer.NewAdminBoard(newAPI(t, env), nil)

	require.NoError(t, board.Load(context.Background()))
	ordersErr, reviewsErr := board.SectionErrors()
	assert.NotEmpty(t, ordersErr)
	assert.Empty(t, reviewsErr)
	assert.Empty(t, board.Orders())
}
