package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows how many configurations are loaded and where they live
type StatusBar struct {
	container   *fyne.Container
	countLabel  *widget.Label
	dirLabel    *widget.Label
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("No configurations")
	sb.dirLabel = widget.NewLabel("")
	sb.dirLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
		widget.NewSeparator(),
		sb.dirLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetConfigInfo updates the configuration count and directory
func (sb *StatusBar) SetConfigInfo(count int, dir string) {
	switch count {
	case 0:
		sb.countLabel.SetText("No configurations")
	case 1:
		sb.countLabel.SetText("1 configuration")
	default:
		sb.countLabel.SetText(fmt.Sprintf("%d configurations", count))
	}
	sb.dirLabel.SetText(dir)
}

// GetConfigInfo returns the text of the count label
func (sb *StatusBar) GetConfigInfo() string {
	return sb.countLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
