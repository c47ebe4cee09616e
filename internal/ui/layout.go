package ui

import (
	"fyne.io/fyne/v2"
)

// splitLayout stacks two objects vertically, giving the first one a fixed
// fraction of the available height and the second one the rest.
type splitLayout struct {
	fraction float32
}

// newSplitLayout returns a layout for a top/bottom pair; fraction is clamped to [0, 1]
func newSplitLayout(fraction float32) fyne.Layout {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return &splitLayout{fraction: fraction}
}

// Layout positions objects[0] on top and objects[1] below it
func (l *splitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}

	topHeight := size.Height * l.fraction
	if len(objects) == 1 {
		topHeight = size.Height
	}

	top := objects[0]
	top.Move(fyne.NewPos(0, 0))
	top.Resize(fyne.NewSize(size.Width, topHeight))

	if len(objects) < 2 {
		return
	}
	bottom := objects[1]
	bottom.Move(fyne.NewPos(0, topHeight))
	bottom.Resize(fyne.NewSize(size.Width, size.Height-topHeight))
}

// MinSize is large enough for both children at the configured split
func (l *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}

	width := objects[0].MinSize().Width
	height := objects[0].MinSize().Height
	if l.fraction > 0 {
		height = height / l.fraction
	}

	if len(objects) > 1 {
		bottom := objects[1].MinSize()
		if bottom.Width > width {
			width = bottom.Width
		}
		if l.fraction < 1 {
			if h := bottom.Height / (1 - l.fraction); h > height {
				height = h
			}
		}
	}

	return fyne.NewSize(width, height)
}
