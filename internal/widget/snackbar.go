package widget

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/abarroso/questdeck/internal/syncqueue"
)

const (
	shadowWidth            = 8 // from Fyne source
	snackbarTimeoutDefault = 3 * time.Second
)

type snackbarMessage struct {
	text    string
	timeout time.Duration
}

// Snackbar shows short notices about app events at the bottom of the
// window, which disappear on their own.
//
// A snackbar is created once per window and then reused. It is safe for
// concurrent use; simultaneous notices are queued and shown one after the
// other.
type Snackbar struct {
	isRunning atomic.Bool
	popup     *widget.PopUp
	q         *syncqueue.SyncQueue[snackbarMessage]
}

// NewSnackbar returns a new snackbar. Call Start() to activate it.
func NewSnackbar(win fyne.Window) *Snackbar {
	return &Snackbar{
		popup: widget.NewPopUp(widget.NewLabel(""), win.Canvas()),
		q:     syncqueue.New[snackbarMessage](),
	}
}

// Show displays a notice with the default timeout.
func (w *Snackbar) Show(text string) {
	w.q.Put(snackbarMessage{text: text, timeout: snackbarTimeoutDefault})
}

// ShowWithTimeout displays a notice with a custom timeout.
func (w *Snackbar) ShowWithTimeout(text string, timeout time.Duration) {
	w.q.Put(snackbarMessage{text: text, timeout: timeout})
}

// Start starts the snackbar so it can display notices.
// Start should be called after the Fyne app is started.
func (w *Snackbar) Start() {
	if !w.isRunning.CompareAndSwap(false, true) {
		slog.Warn("Snackbar already running")
		return
	}
	go func() {
		for {
			m, _ := w.q.Get(context.Background())
			fyne.Do(func() {
				w.update(m.text)
				w.popup.Show()
			})
			time.Sleep(m.timeout)
			fyne.Do(w.popup.Hide)
		}
	}()
	slog.Debug("Snackbar started")
}

func (w *Snackbar) update(text string) {
	w.popup.Content.(*widget.Label).SetText(text)
	_, canvasSize := w.popup.Canvas.InteractiveArea()
	outerSize := w.popup.Content.MinSize().Add(fyne.NewSquareSize(
		theme.Size(theme.SizeNameInnerPadding) + shadowWidth,
	))
	w.popup.Move(fyne.NewPos(
		canvasSize.Width/2-(outerSize.Width)/2,
		canvasSize.Height-outerSize.Height-0.2*outerSize.Height,
	))
}
