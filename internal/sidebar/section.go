package sidebar

import (
	"image/color"

	"flexipy-lite/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	SectionSpacing  = 5
	SeparatorHeight = 1
)

// Section is an ordered group of buttons, optionally closed by a divider
type Section struct {
	title   string
	buttons []*Button
}

func NewSection(title string) *Section {
	return &Section{title: title}
}

func (s *Section) Title() string { return s.title }

// Add appends a button; sections are only filled during construction
func (s *Section) Add(button *Button) *Button {
	s.buttons = append(s.buttons, button)
	return button
}

// Buttons returns the buttons in display order
func (s *Section) Buttons() []*Button {
	return s.buttons
}

// Objects returns the canvas objects for this section. The first section
// gets extra leading space; addSeparator appends a thin divider between
// two spacers.
func (s *Section) Objects(first, addSeparator bool, colors *theme.Manager) []fyne.CanvasObject {
	var objects []fyne.CanvasObject

	if first {
		objects = append(objects, spacer(SectionSpacing))
	}

	for _, b := range s.buttons {
		objects = append(objects, b)
	}

	if addSeparator {
		line := canvas.NewRectangle(colors.Color(theme.SidebarHover))
		line.SetMinSize(fyne.NewSize(0, SeparatorHeight))
		objects = append(objects, spacer(SectionSpacing), line, spacer(SectionSpacing))
	}

	return objects
}

func spacer(height float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(0, height))
	return r
}
