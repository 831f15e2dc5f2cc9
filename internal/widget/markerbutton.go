package widget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MarkerButton is the character marker on the home canvas. There is exactly
// one; it cannot be removed. Dragging works like [FloatingButton], tapping
// it opens the character view.
type MarkerButton struct {
	widget.BaseWidget

	OnTapped func()
	// OnMoved is called with the widget's center after a drag ended.
	OnMoved func(center fyne.Position)

	bg       *canvas.Circle
	icon     *widget.Icon
	label    *widget.Label
	editMode bool
	dragging bool
	hovered  bool
}

var _ desktop.Hoverable = (*MarkerButton)(nil)
var _ fyne.Draggable = (*MarkerButton)(nil)
var _ fyne.Tappable = (*MarkerButton)(nil)
var _ fyne.Widget = (*MarkerButton)(nil)

func NewMarkerButton(name string, tapped func()) *MarkerButton {
	w := &MarkerButton{
		OnTapped: tapped,
		icon:     widget.NewIcon(theme.AccountIcon()),
		label:    widget.NewLabel(name),
	}
	w.label.Alignment = fyne.TextAlignCenter
	w.label.TextStyle = fyne.TextStyle{Bold: true}
	w.bg = canvas.NewCircle(color.Transparent)
	w.ExtendBaseWidget(w)
	return w
}

// SetName updates the displayed character name.
func (w *MarkerButton) SetName(name string) {
	w.label.SetText(name)
}

// IsDragging reports whether a drag is in flight.
func (w *MarkerButton) IsDragging() bool {
	return w.dragging
}

// SetEditMode enables or disables dragging.
func (w *MarkerButton) SetEditMode(v bool) {
	if w.editMode == v {
		return
	}
	w.editMode = v
	w.Refresh()
}

func (w *MarkerButton) Tapped(_ *fyne.PointEvent) {
	if w.editMode {
		return
	}
	if w.OnTapped != nil {
		w.OnTapped()
	}
}

func (w *MarkerButton) Dragged(e *fyne.DragEvent) {
	if !w.editMode {
		return
	}
	if !w.dragging {
		w.dragging = true
		w.Refresh()
	}
	w.Move(w.Position().Add(e.Dragged))
}

func (w *MarkerButton) DragEnd() {
	if !w.dragging {
		return
	}
	w.dragging = false
	w.Refresh()
	if w.OnMoved != nil {
		s := w.Size()
		w.OnMoved(w.Position().Add(fyne.NewPos(s.Width/2, s.Height/2)))
	}
}

func (w *MarkerButton) MouseIn(_ *desktop.MouseEvent) {
	w.hovered = true
	w.Refresh()
}

func (w *MarkerButton) MouseMoved(_ *desktop.MouseEvent) {
}

func (w *MarkerButton) MouseOut() {
	w.hovered = false
	w.Refresh()
}

func (w *MarkerButton) Refresh() {
	w.updateState()
	w.bg.Refresh()
	w.BaseWidget.Refresh()
}

func (w *MarkerButton) updateState() {
	if w.bg == nil {
		return
	}
	th := w.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	switch {
	case w.dragging:
		w.bg.FillColor = th.Color(theme.ColorNameSelection, v)
	case w.hovered:
		w.bg.FillColor = th.Color(theme.ColorNameHover, v)
	default:
		w.bg.FillColor = th.Color(theme.ColorNameButton, v)
	}
	if w.editMode {
		w.bg.StrokeWidth = theme.Size(theme.SizeNameInputBorder) * 2
		w.bg.StrokeColor = th.Color(theme.ColorNamePrimary, v)
	} else {
		w.bg.StrokeWidth = 0
	}
}

func (w *MarkerButton) CreateRenderer() fyne.WidgetRenderer {
	w.updateState()
	c := container.NewVBox(
		container.NewStack(w.bg, container.NewPadded(w.icon)),
		w.label,
	)
	return widget.NewSimpleRenderer(c)
}
