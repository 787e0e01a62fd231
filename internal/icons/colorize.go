package icons

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"runtime"

	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned when a transform receives an image without pixels
var ErrEmptyImage = errors.New("image is empty")

// Colorize returns an image of the same dimensions whose colour channels are
// solid white and whose alpha channel is copied from src, so the icon's
// shape is painted white over a transparent background.
func Colorize(src image.Image) (*image.NRGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	b := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	mat, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return nil, fmt.Errorf("Mat creation failed: %w", err)
	}
	defer mat.Close()
	if err := validateMat(mat, "Split"); err != nil {
		return nil, err
	}

	channels := gocv.Split(mat)
	defer func() {
		for i := range channels {
			channels[i].Close()
		}
	}()
	if len(channels) != 4 {
		return nil, fmt.Errorf("unexpected channel count: %d", len(channels))
	}

	white := gocv.NewScalar(255, 0, 0, 0)
	for i := 0; i < 3; i++ {
		channels[i].SetTo(white)
	}

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge(channels, &merged)
	if err := validateMat(merged, "ToBytes"); err != nil {
		return nil, err
	}

	data := merged.ToBytes()
	runtime.KeepAlive(rgba)
	if len(data) != len(rgba.Pix) {
		return nil, fmt.Errorf("merged Mat has %d bytes, want %d", len(data), len(rgba.Pix))
	}

	out := image.NewNRGBA(rgba.Rect)
	copy(out.Pix, data)
	return out, nil
}

func validateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}
	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d for operation: %s",
			mat.Cols(), mat.Rows(), operation)
	}
	if mat.Channels() != 4 {
		return fmt.Errorf("%s requires 4 channels, got %d", operation, mat.Channels())
	}
	return nil
}

// ColorizeSet applies Colorize to every standard size, mode and state the
// source defines. Combinations the source lacks are skipped.
func ColorizeSet(src *IconSet, source Source) (*IconSet, error) {
	out := NewIconSet(src.Name(), source)
	done := make(map[image.Image]*image.NRGBA)

	for _, size := range StandardSizes {
		for _, mode := range Modes {
			for _, state := range States {
				pixmap, ok := src.Pixmap(size, mode, state)
				if !ok {
					continue
				}

				white, seen := done[pixmap]
				if !seen {
					var err error
					if white, err = Colorize(pixmap); err != nil {
						return nil, fmt.Errorf("colorize %s at %dpx: %w", src.Name(), size, err)
					}
					done[pixmap] = white
				}
				out.AddImage(white, mode, state)
			}
		}
	}

	return out, nil
}
