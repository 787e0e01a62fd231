package components

import (
	"flexipy-lite/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

var configColumns = []string{"Name", "Description"}

// ConfigRow is one line of the configuration table
type ConfigRow struct {
	Key   string
	Model models.ConfigModel
}

// DisplayName is the model name, or the storage key when the name is empty
func (r ConfigRow) DisplayName() string {
	if r.Model.Name != "" {
		return r.Model.Name
	}
	return r.Key
}

// ConfigTable lists configurations in a two-column table with single-row
// selection.
type ConfigTable struct {
	table    *widget.Table
	rows     []ConfigRow
	selected int
}

// NewConfigTable creates an empty table
func NewConfigTable() *ConfigTable {
	ct := &ConfigTable{selected: -1}
	ct.createTable()
	return ct
}

func (ct *ConfigTable) createTable() {
	ct.table = widget.NewTable(
		func() (int, int) {
			return len(ct.rows), len(configColumns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(ct.CellText(id.Row, id.Col))
		},
	)

	ct.table.ShowHeaderRow = true
	ct.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	ct.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(configColumns) {
			cell.(*widget.Label).SetText(configColumns[id.Col])
		}
	}

	ct.table.SetColumnWidth(0, 240)
	ct.table.SetColumnWidth(1, 520)

	ct.table.OnSelected = func(id widget.TableCellID) {
		ct.selected = id.Row
	}
	ct.table.OnUnselected = func(widget.TableCellID) {
		ct.selected = -1
	}
}

// SetRows replaces the table content and clears the selection
func (ct *ConfigTable) SetRows(rows []ConfigRow) {
	ct.rows = rows
	ct.selected = -1
	ct.table.UnselectAll()
	ct.table.Refresh()
}

// Rows returns the rows currently shown
func (ct *ConfigTable) Rows() []ConfigRow {
	return ct.rows
}

// CellText returns the text shown at row, col
func (ct *ConfigTable) CellText(row, col int) string {
	if row < 0 || row >= len(ct.rows) {
		return ""
	}
	switch col {
	case 0:
		return ct.rows[row].DisplayName()
	case 1:
		return ct.rows[row].Model.Description
	default:
		return ""
	}
}

// Select highlights row, selecting the whole line
func (ct *ConfigTable) Select(row int) {
	if row < 0 || row >= len(ct.rows) {
		return
	}
	ct.table.Select(widget.TableCellID{Row: row, Col: 0})
}

// Selected returns the selected row, false when none is selected
func (ct *ConfigTable) Selected() (ConfigRow, bool) {
	if ct.selected < 0 || ct.selected >= len(ct.rows) {
		return ConfigRow{}, false
	}
	return ct.rows[ct.selected], true
}

// Widget returns the underlying table
func (ct *ConfigTable) Widget() *widget.Table {
	return ct.table
}
