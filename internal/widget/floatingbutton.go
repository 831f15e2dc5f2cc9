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

// FloatingButton is a placeable shortcut button on the home canvas.
//
// The widget never writes state itself. In edit mode it can be dragged for
// visual feedback only; the release point is reported through OnMoved with
// the widget's center in canvas coordinates and committing is the caller's
// job. Outside of edit mode it behaves like a plain button.
type FloatingButton struct {
	widget.BaseWidget

	// OnTapped is called on activation outside of edit mode.
	OnTapped func()
	// OnRemove is called on a secondary tap in edit mode.
	OnRemove func()
	// OnMoved is called with the widget's center after a drag ended.
	OnMoved func(center fyne.Position)

	bg       *canvas.Rectangle
	icon     *widget.Icon
	label    *widget.Label
	editMode bool
	dragging bool
	hovered  bool
}

var _ desktop.Cursorable = (*FloatingButton)(nil)
var _ desktop.Hoverable = (*FloatingButton)(nil)
var _ fyne.Draggable = (*FloatingButton)(nil)
var _ fyne.SecondaryTappable = (*FloatingButton)(nil)
var _ fyne.Tappable = (*FloatingButton)(nil)
var _ fyne.Widget = (*FloatingButton)(nil)

// NewFloatingButton returns a new [FloatingButton] with the given label and
// icon name.
func NewFloatingButton(label, iconName string, tapped func()) *FloatingButton {
	w := &FloatingButton{
		OnTapped: tapped,
		icon:     widget.NewIcon(IconResource(iconName)),
		label:    widget.NewLabel(label),
	}
	w.label.Alignment = fyne.TextAlignCenter
	w.bg = canvas.NewRectangle(color.Transparent)
	w.bg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	w.ExtendBaseWidget(w)
	return w
}

// SetEditMode enables or disables dragging and removal.
func (w *FloatingButton) SetEditMode(v bool) {
	if w.editMode == v {
		return
	}
	w.editMode = v
	w.Refresh()
}

// IsDragging reports whether a drag gesture is in flight.
func (w *FloatingButton) IsDragging() bool {
	return w.dragging
}

func (w *FloatingButton) Tapped(_ *fyne.PointEvent) {
	if w.editMode {
		return
	}
	if w.OnTapped != nil {
		w.OnTapped()
	}
}

func (w *FloatingButton) TappedSecondary(_ *fyne.PointEvent) {
	if !w.editMode {
		return
	}
	if w.OnRemove != nil {
		w.OnRemove()
	}
}

func (w *FloatingButton) Dragged(e *fyne.DragEvent) {
	if !w.editMode {
		return
	}
	if !w.dragging {
		w.dragging = true
		w.Refresh()
	}
	w.Move(w.Position().Add(e.Dragged))
}

func (w *FloatingButton) DragEnd() {
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

func (w *FloatingButton) Cursor() desktop.Cursor {
	if w.editMode {
		return desktop.CrosshairCursor
	}
	if w.hovered {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (w *FloatingButton) MouseIn(_ *desktop.MouseEvent) {
	w.hovered = true
	w.Refresh()
}

func (w *FloatingButton) MouseMoved(_ *desktop.MouseEvent) {
}

func (w *FloatingButton) MouseOut() {
	w.hovered = false
	w.Refresh()
}

func (w *FloatingButton) Refresh() {
	w.updateState()
	w.bg.Refresh()
	w.BaseWidget.Refresh()
}

func (w *FloatingButton) updateState() {
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
		w.bg.StrokeColor = color.Transparent
	}
}

func (w *FloatingButton) CreateRenderer() fyne.WidgetRenderer {
	w.updateState()
	c := container.NewStack(
		w.bg,
		container.NewPadded(container.NewVBox(container.NewCenter(w.icon), w.label)),
	)
	return widget.NewSimpleRenderer(c)
}

// IconResource maps a stored icon name to a theme icon. Unknown names get a
// generic fallback so a snapshot from a newer release still renders.
func IconResource(name string) fyne.Resource {
	switch name {
	case "body":
		return theme.AccountIcon()
	case "home":
		return theme.HomeIcon()
	case "inventory":
		return theme.StorageIcon()
	case "map":
		return theme.SearchIcon()
	case "missions":
		return theme.ListIcon()
	case "settings":
		return theme.SettingsIcon()
	}
	return theme.QuestionIcon()
}
