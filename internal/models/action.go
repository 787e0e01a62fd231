package models

import "fmt"

// Action identifies one selectable sidebar entry. The sidebar toggle is not
// an Action: it never takes part in selection.
type Action int

const (
	ActionStart Action = iota
	ActionNew
	ActionEdit
	ActionDelete
	ActionImport
	ActionExport
	ActionSettings
)

// ToggleID is the reserved identifier of the sidebar expand/collapse control
const ToggleID = "menu"

var actionInfo = [...]struct {
	id    string
	label string
	title string
}{
	ActionStart:    {"start", "Start", "Start"},
	ActionNew:      {"new", "New", "New Configuration"},
	ActionEdit:     {"edit", "Edit", "Edit Configuration"},
	ActionDelete:   {"delete", "Delete", "Delete Configuration"},
	ActionImport:   {"import", "Import", "Import Configuration"},
	ActionExport:   {"export", "Export", "Export Configuration"},
	ActionSettings: {"settings", "Options", "Options"},
}

// Actions returns every action in manifest order
func Actions() []Action {
	all := make([]Action, len(actionInfo))
	for i := range actionInfo {
		all[i] = Action(i)
	}
	return all
}

// ParseAction maps a button identifier to its Action
func ParseAction(id string) (Action, bool) {
	for i, info := range actionInfo {
		if info.id == id {
			return Action(i), true
		}
	}
	return 0, false
}

func (a Action) Valid() bool {
	return a >= 0 && int(a) < len(actionInfo)
}

// ID returns the stable button identifier, also used as the icon name
func (a Action) ID() string {
	if !a.Valid() {
		return ""
	}
	return actionInfo[a].id
}

// Label returns the sidebar button text
func (a Action) Label() string {
	if !a.Valid() {
		return ""
	}
	return actionInfo[a].label
}

// Title returns the heading shown in the content area
func (a Action) Title() string {
	if !a.Valid() {
		return ""
	}
	return actionInfo[a].title
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionInfo[a].id
}
