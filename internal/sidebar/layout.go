package sidebar

import "fyne.io/fyne/v2"

// fixedWidthLayout stacks its objects and reports a minimum width taken from
// the controller, so that parents such as a border layout give the sidebar
// exactly the collapsed or expanded width.
type fixedWidthLayout struct {
	width func() float32
}

func (l *fixedWidthLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	size := fyne.NewSize(l.width(), containerSize.Height)
	for _, obj := range objects {
		obj.Resize(size)
		obj.Move(fyne.NewPos(0, 0))
	}
}

func (l *fixedWidthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	maxHeight := float32(0)
	for _, obj := range objects {
		maxHeight = fyne.Max(maxHeight, obj.MinSize().Height)
	}
	return fyne.NewSize(l.width(), maxHeight)
}
