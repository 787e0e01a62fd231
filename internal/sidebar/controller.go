// Package sidebar implements the collapsible navigation sidebar: its buttons,
// their grouping into sections, and the controller that owns the
// expand/collapse and single-selection state.
package sidebar

import (
	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/models"
	"flexipy-lite/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	CollapsedWidth = 60
	ExpandedWidth  = 200
	VerticalMargin = 10

	// ToggleLabel is the text of the expand/collapse control
	ToggleLabel = "Toggle Sidebar"

	component = "Sidebar"
)

// manifest lists the selectable actions of each section after the toggle
// section, in display order.
var manifest = [][]models.Action{
	{models.ActionStart},
	{models.ActionNew, models.ActionEdit, models.ActionDelete},
	{models.ActionImport, models.ActionExport},
	{models.ActionSettings},
}

// Options carries the collaborators of a Controller. OnSelect is the single
// consumer of selection events and is already invoked once during
// construction, for the default entry.
type Options struct {
	Resolver *icons.Resolver
	Theme    *theme.Manager
	Logger   logger.Logger
	OnSelect func(models.Action)
	OnToggle func(expanded bool)
}

// Controller owns every sidebar button and drives the expanded flag and the
// selection. At most one non-toggle button is selected at any time.
type Controller struct {
	opts     Options
	expanded bool
	sections []*Section
	buttons  map[string]*Button
	selected string
	root     *fyne.Container
}

// NewController builds the sections from the fixed manifest, starting
// collapsed with the Start entry selected.
func NewController(opts Options) *Controller {
	if opts.Theme == nil {
		opts.Theme = theme.New(theme.DefaultThemeName)
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Resolver == nil {
		opts.Resolver = icons.NewResolverWithStrategies(opts.Logger)
	}

	c := &Controller{
		opts:    opts,
		buttons: make(map[string]*Button),
	}

	c.createSections()
	c.root = c.buildWidget()
	c.SelectAction(models.ActionStart)

	return c
}

func (c *Controller) createSections() {
	toggleSection := NewSection("")
	toggle := toggleSection.Add(c.newButton(models.ToggleID, ToggleLabel))
	toggle.OnTapped = c.Toggle
	c.sections = append(c.sections, toggleSection)

	for _, actions := range manifest {
		section := NewSection("")
		for _, action := range actions {
			id := action.ID()
			button := section.Add(c.newButton(id, action.Label()))
			button.OnTapped = func() { c.Select(id) }
		}
		c.sections = append(c.sections, section)
	}
}

func (c *Controller) newButton(id, label string) *Button {
	button := NewButton(id, id, label, c.expanded, c.opts.Resolver, c.opts.Theme)
	c.buttons[id] = button
	return button
}

func (c *Controller) buildWidget() *fyne.Container {
	var objects []fyne.CanvasObject
	for i, section := range c.sections {
		last := i == len(c.sections)-1
		objects = append(objects, section.Objects(i == 0, !last, c.opts.Theme)...)
	}

	content := container.NewBorder(
		spacer(VerticalMargin),
		spacer(VerticalMargin),
		nil, nil,
		container.NewVBox(objects...),
	)
	background := canvas.NewRectangle(c.opts.Theme.Color(theme.SidebarBackground))

	return container.New(&fixedWidthLayout{width: c.Width}, background, content)
}

// Widget returns the sidebar canvas object
func (c *Controller) Widget() fyne.CanvasObject {
	return c.root
}

// Expanded reports whether labels are currently shown
func (c *Controller) Expanded() bool {
	return c.expanded
}

// Width is the sidebar width for the current expanded state
func (c *Controller) Width() float32 {
	if c.expanded {
		return ExpandedWidth
	}
	return CollapsedWidth
}

// Selected returns the selected action, false when nothing is selected
func (c *Controller) Selected() (models.Action, bool) {
	if c.selected == "" {
		return 0, false
	}
	return models.ParseAction(c.selected)
}

// Button returns the button registered under id
func (c *Controller) Button(id string) (*Button, bool) {
	b, ok := c.buttons[id]
	return b, ok
}

// Sections returns the sections in layout order
func (c *Controller) Sections() []*Section {
	return c.sections
}

// Toggle flips between expanded and collapsed. Selection is untouched and no
// selection event is emitted.
func (c *Controller) Toggle() {
	c.expanded = !c.expanded

	for _, button := range c.buttons {
		button.SetExpanded(c.expanded)
	}
	c.root.Refresh()

	c.opts.Logger.Debug(component, "sidebar toggled", map[string]interface{}{
		"expanded": c.expanded,
	})

	if c.opts.OnToggle != nil {
		c.opts.OnToggle(c.expanded)
	}
}

// Select handles a tap on the button with the given identifier. The toggle
// identifier and identifiers that name no action are ignored: nothing is
// deselected, the current selection stays and no event is emitted.
func (c *Controller) Select(id string) {
	if id == models.ToggleID {
		return
	}

	action, ok := models.ParseAction(id)
	if !ok {
		c.opts.Logger.Warning(component, "ignoring selection of unknown entry", map[string]interface{}{
			"id": id,
		})
		return
	}

	c.SelectAction(action)
}

// SelectAction deselects every selectable button, selects the one for
// action and emits the selection event. Re-selecting the current entry
// emits again.
func (c *Controller) SelectAction(action models.Action) {
	target, ok := c.buttons[action.ID()]
	if !ok {
		return
	}

	for id, button := range c.buttons {
		if id != models.ToggleID {
			button.SetSelected(false)
		}
	}

	target.SetSelected(true)
	c.selected = action.ID()

	c.opts.Logger.Debug(component, "entry selected", map[string]interface{}{
		"id": c.selected,
	})

	if c.opts.OnSelect != nil {
		c.opts.OnSelect(action)
	}
}
