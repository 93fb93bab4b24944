package composer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"portfolio-backend/internal/review"
)

const DefaultCopiedFor = 2 * time.Second

var ErrNothingToCopy = errors.New("no review to copy")

type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type WidgetOption func(*GeneratorWidget)

// WithCopiedFor changes how long the copied indicator stays on.
func WithCopiedFor(d time.Duration) WidgetOption {
	return func(w *GeneratorWidget) { w.copiedFor = d }
}

// GeneratorWidget generates text from explicit selections. It never
// persists; the only follow-up is copying the text.
type GeneratorWidget struct {
	api       GatewayAPI
	clipboard Clipboard
	copiedFor time.Duration

	mu         sync.Mutex
	selections review.Fields
	generated  string
	busy       bool
	copied     bool
	copySeq    int
	copyTimer  *time.Timer
}

func NewGeneratorWidget(api GatewayAPI, clip Clipboard, opts ...WidgetOption) *GeneratorWidget {
	w := &GeneratorWidget{
		api:       api,
		clipboard: clip,
		copiedFor: DefaultCopiedFor,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *GeneratorWidget) Select(fields review.Fields) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selections = fields
}

func (w *GeneratorWidget) Generated() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generated
}

func (w *GeneratorWidget) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

func (w *GeneratorWidget) Copied() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copied
}

func (w *GeneratorWidget) Generate(ctx context.Context) (string, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return "", ErrBusy
	}
	if !w.selections.Complete() {
		w.mu.Unlock()
		return "", &InputError{Message: "Please fill in all required fields"}
	}
	fields := w.selections
	w.busy = true
	w.mu.Unlock()

	text, err := w.api.GenerateReview(ctx, fields)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err != nil {
		return "", err
	}
	w.generated = text
	return text, nil
}

// Copy puts the generated text on the clipboard and turns the copied
// indicator on until copiedFor elapses. Copying again restarts the timer.
func (w *GeneratorWidget) Copy() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generated == "" {
		return ErrNothingToCopy
	}
	if err := w.clipboard.WriteAll(w.generated); err != nil {
		return err
	}

	w.copied = true
	w.copySeq++
	seq := w.copySeq
	if w.copyTimer != nil {
		w.copyTimer.Stop()
	}
	w.copyTimer = time.AfterFunc(w.copiedFor, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.copySeq == seq {
			w.copied = false
		}
	})
	return nil
}
