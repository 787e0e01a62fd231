package sidebar

import (
	"image/color"

	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	IconSize     = 24
	ButtonPad    = 10
	AccentWidth  = 4
	LabelTextPad = 8
)

// Button is a sidebar entry: an icon, a label shown only while the sidebar
// is expanded, and a selected flag drawn as a highlighted background with a
// leading accent bar. What a tap means is decided by the owner via OnTapped.
type Button struct {
	widget.BaseWidget

	id       string
	iconName string
	label    string
	icon     *icons.IconSet
	colors   *theme.Manager

	expanded bool
	selected bool
	hovered  bool

	OnTapped func()
}

// NewButton creates a button whose icon is resolved once, up front
func NewButton(id, iconName, label string, expanded bool, resolver *icons.Resolver, colors *theme.Manager) *Button {
	b := &Button{
		id:       id,
		iconName: iconName,
		label:    label,
		icon:     resolver.Resolve(iconName),
		colors:   colors,
		expanded: expanded,
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *Button) ID() string       { return b.id }
func (b *Button) Label() string    { return b.label }
func (b *Button) IconName() string { return b.iconName }
func (b *Button) Selected() bool   { return b.selected }
func (b *Button) Expanded() bool   { return b.expanded }

// IconSource reports which resolution step produced the icon
func (b *Button) IconSource() icons.Source {
	return b.icon.Source()
}

// SetExpanded switches between icon+label and icon-only presentation
func (b *Button) SetExpanded(expanded bool) {
	if b.expanded == expanded {
		return
	}
	b.expanded = expanded
	b.Refresh()
}

// SetSelected updates the flag and redraws straight away
func (b *Button) SetSelected(selected bool) {
	b.selected = selected
	b.Refresh()
}

func (b *Button) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *Button) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *Button) MouseMoved(*desktop.MouseEvent) {}

func (b *Button) MouseOut() {
	b.hovered = false
	b.Refresh()
}

func (b *Button) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *Button) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.label, b.colors.Color(theme.SidebarText))
	text.Alignment = fyne.TextAlignLeading

	img := canvas.NewImageFromResource(b.icon.Resource(IconSize))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(IconSize, IconSize))

	r := &buttonRenderer{
		button:     b,
		background: canvas.NewRectangle(color.Transparent),
		accent:     canvas.NewRectangle(b.colors.Color(theme.SidebarText)),
		icon:       img,
		text:       text,
	}
	r.objects = []fyne.CanvasObject{r.background, r.accent, r.icon, r.text}
	r.applyState()
	return r
}

type buttonRenderer struct {
	button     *Button
	background *canvas.Rectangle
	accent     *canvas.Rectangle
	icon       *canvas.Image
	text       *canvas.Text
	objects    []fyne.CanvasObject
}

func (r *buttonRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	r.accent.Resize(fyne.NewSize(AccentWidth, size.Height))
	r.accent.Move(fyne.NewPos(0, 0))

	iconY := (size.Height - IconSize) / 2
	r.icon.Resize(fyne.NewSize(IconSize, IconSize))
	r.icon.Move(fyne.NewPos(ButtonPad, iconY))

	textSize := r.text.MinSize()
	textX := float32(ButtonPad + IconSize + LabelTextPad)
	r.text.Resize(fyne.NewSize(fyne.Max(size.Width-textX-ButtonPad, 0), textSize.Height))
	r.text.Move(fyne.NewPos(textX, (size.Height-textSize.Height)/2))
}

func (r *buttonRenderer) MinSize() fyne.Size {
	height := float32(IconSize + 2*ButtonPad)
	if !r.button.expanded {
		return fyne.NewSize(IconSize+2*ButtonPad, height)
	}
	textWidth := r.text.MinSize().Width
	return fyne.NewSize(IconSize+2*ButtonPad+LabelTextPad+textWidth, height)
}

func (r *buttonRenderer) Refresh() {
	r.applyState()
	r.Layout(r.button.Size())
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

func (r *buttonRenderer) applyState() {
	b := r.button
	switch {
	case b.selected:
		r.background.FillColor = b.colors.Color(theme.SidebarSelected)
	case b.hovered:
		r.background.FillColor = b.colors.Color(theme.SidebarHover)
	default:
		r.background.FillColor = color.Transparent
	}

	if b.selected {
		r.accent.Show()
	} else {
		r.accent.Hide()
	}

	if b.expanded {
		r.text.Show()
	} else {
		r.text.Hide()
	}
}

func (r *buttonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *buttonRenderer) Destroy() {}
