package icons

import (
	"bytes"
	"image"
	"image/png"
	"slices"

	"fyne.io/fyne/v2"
)

// Mode is the rendering mode a variant is drawn for
type Mode int

const (
	ModeNormal Mode = iota
	ModeDisabled
	ModeActive
	ModeSelected
)

// State is the toggle state a variant is drawn for
type State int

const (
	StateOff State = iota
	StateOn
)

// Source records which step of the resolution chain produced a set
type Source int

const (
	SourceNone Source = iota
	SourceBundleLight
	SourceBundle
	SourceFileLight
	SourceFileColorized
)

var (
	// StandardSizes are the pixel sizes the colorization pass requests
	StandardSizes = []int{16, 24, 32, 48, 64}
	Modes         = []Mode{ModeNormal, ModeDisabled, ModeActive, ModeSelected}
	States        = []State{StateOn, StateOff}
)

func (s Source) String() string {
	switch s {
	case SourceBundleLight:
		return "bundle-light"
	case SourceBundle:
		return "bundle"
	case SourceFileLight:
		return "file-light"
	case SourceFileColorized:
		return "file-colorized"
	default:
		return "none"
	}
}

type variantKey struct {
	size  int
	mode  Mode
	state State
}

// IconSet is a logical icon with image variants keyed by size, mode and
// state. The zero-variant set is the null icon.
type IconSet struct {
	name     string
	source   Source
	variants map[variantKey]image.Image
}

func NewIconSet(name string, source Source) *IconSet {
	return &IconSet{
		name:     name,
		source:   source,
		variants: make(map[variantKey]image.Image),
	}
}

func (s *IconSet) Name() string   { return s.name }
func (s *IconSet) Source() Source { return s.source }

// IsNull reports whether the set has no variants at all
func (s *IconSet) IsNull() bool {
	return len(s.variants) == 0
}

// AddImage registers img for mode and state under its larger dimension
func (s *IconSet) AddImage(img image.Image, mode Mode, state State) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	b := img.Bounds()
	s.variants[variantKey{size: max(b.Dx(), b.Dy()), mode: mode, state: state}] = img
}

// Sizes lists the defined sizes for mode and state in ascending order
func (s *IconSet) Sizes(mode Mode, state State) []int {
	var sizes []int
	for k := range s.variants {
		if k.mode == mode && k.state == state {
			sizes = append(sizes, k.size)
		}
	}
	slices.Sort(sizes)
	return sizes
}

// Pixmap returns the variant for mode and state that best fits size: an
// exact match, else the smallest larger one, else the largest. The second
// result is false when the set defines nothing for mode and state.
func (s *IconSet) Pixmap(size int, mode Mode, state State) (image.Image, bool) {
	sizes := s.Sizes(mode, state)
	if len(sizes) == 0 {
		return nil, false
	}

	best := sizes[len(sizes)-1]
	for _, candidate := range sizes {
		if candidate >= size {
			best = candidate
			break
		}
	}
	return s.variants[variantKey{size: best, mode: mode, state: state}], true
}

// Resource encodes the normal/off variant closest to size as a PNG resource
// for Fyne widgets. The null icon yields nil.
func (s *IconSet) Resource(size int) fyne.Resource {
	img, ok := s.Pixmap(size, ModeNormal, StateOff)
	if !ok {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return fyne.NewStaticResource(s.name+".png", buf.Bytes())
}
