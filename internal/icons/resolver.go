// Package icons resolves logical icon names to image sets. Lookups walk an
// ordered chain of strategies (embedded bundle, then the application's icon
// directory) and never fail: a name nothing can satisfy yields a null set.
package icons

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"flexipy-lite/internal/logger"
)

const (
	lightSuffix = "_light"
	iconExt     = ".png"
	component   = "IconResolver"
)

//go:embed icons/*.png
var bundle embed.FS

// Bundle returns the icons compiled into the binary, laid out as
// icons/<name>.png.
func Bundle() fs.FS {
	return bundle
}

// errNotFound marks a strategy miss, which is not worth more than a debug line
var errNotFound = errors.New("icon not found")

// Strategy is one step of the resolution chain
type Strategy struct {
	Source Source
	Lookup func(name string) (*IconSet, error)
}

// BundleStrategy looks up icons/<name><suffix>.png in fsys
func BundleStrategy(fsys fs.FS, suffix string, source Source) Strategy {
	return Strategy{
		Source: source,
		Lookup: func(name string) (*IconSet, error) {
			return decodeSet(fsys, path.Join("icons", name+suffix+iconExt), name, source)
		},
	}
}

// FileStrategy looks up <dir>/<name><suffix>.png on disk. transform, when
// set, post-processes the decoded set.
func FileStrategy(dir, suffix string, source Source, transform func(*IconSet) (*IconSet, error)) Strategy {
	return Strategy{
		Source: source,
		Lookup: func(name string) (*IconSet, error) {
			set, err := decodeSet(os.DirFS(dir), name+suffix+iconExt, name, source)
			if err != nil || transform == nil {
				return set, err
			}
			return transform(set)
		},
	}
}

// Resolver applies its strategies in order and returns the first hit
type Resolver struct {
	strategies []Strategy
	logger     logger.Logger
}

// NewResolver builds the standard chain: bundled light variant, bundled
// base variant, light file under <appRoot>/resources/icons, then the base
// file there recoloured white.
func NewResolver(appRoot string, log logger.Logger) *Resolver {
	dir := IconsDir(appRoot)
	colorize := func(set *IconSet) (*IconSet, error) {
		return ColorizeSet(set, SourceFileColorized)
	}

	return NewResolverWithStrategies(log,
		BundleStrategy(Bundle(), lightSuffix, SourceBundleLight),
		BundleStrategy(Bundle(), "", SourceBundle),
		FileStrategy(dir, lightSuffix, SourceFileLight, nil),
		FileStrategy(dir, "", SourceFileColorized, colorize),
	)
}

func NewResolverWithStrategies(log logger.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		logger:     log,
	}
}

// IconsDir returns the filesystem icon directory for an application root
func IconsDir(appRoot string) string {
	return filepath.Join(appRoot, "resources", "icons")
}

// Resolve returns the icon set for name. The result is never nil; when no
// strategy succeeds it is a null set with SourceNone.
func (r *Resolver) Resolve(name string) *IconSet {
	for _, strategy := range r.strategies {
		set, err := strategy.Lookup(name)
		if err == nil && set != nil && !set.IsNull() {
			r.logger.Debug(component, "icon resolved", map[string]interface{}{
				"name":   name,
				"source": strategy.Source.String(),
			})
			return set
		}

		if err != nil && !errors.Is(err, errNotFound) {
			r.logger.Warning(component, "icon candidate unusable", map[string]interface{}{
				"name":   name,
				"source": strategy.Source.String(),
				"error":  err.Error(),
			})
			continue
		}

		r.logger.Debug(component, "icon candidate missing", map[string]interface{}{
			"name":   name,
			"source": strategy.Source.String(),
		})
	}

	r.logger.Warning(component, "icon not found", map[string]interface{}{
		"name": name,
	})
	return NewIconSet(name, SourceNone)
}

func decodeSet(fsys fs.FS, file, name string, source Source) (*IconSet, error) {
	f, err := fsys.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}

	set := NewIconSet(name, source)
	set.AddImage(img, ModeNormal, StateOff)
	return set, nil
}
