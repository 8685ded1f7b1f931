package catalog

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/menta2k/bezel-catalog/pkg/decode"
	"github.com/menta2k/bezel-catalog/pkg/discovery"
	"github.com/menta2k/bezel-catalog/pkg/viewport"
)

// BuilderConfig holds configuration for catalog building.
type BuilderConfig struct {
	// Detector configures viewport detection.
	Detector viewport.Config
	// ShadowDirNames is the closed set of directory names marking shadowed
	// assets. Empty means DefaultShadowDirNames.
	ShadowDirNames []string
	// Extensions filters discovered files. Empty means discovery defaults.
	Extensions []string
	// Workers bounds how many assets are processed concurrently.
	// Zero or negative means runtime.NumCPU().
	Workers int
}

// DefaultBuilderConfig returns the catalog building defaults.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Detector:       viewport.DefaultConfig(),
		ShadowDirNames: DefaultShadowDirNames,
		Extensions:     discovery.DefaultExtensions,
		Workers:        runtime.NumCPU(),
	}
}

// Builder turns a tree of bezel assets into one Catalog.
type Builder struct {
	config    BuilderConfig
	assembler *Assembler
	open      func(string) (image.Image, error)
}

// NewBuilder creates a Builder with default configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a Builder with custom configuration.
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	return &Builder{
		config:    config,
		assembler: NewAssembler(viewport.NewWithConfig(config.Detector), config.ShadowDirNames),
		open:      decode.Open,
	}
}

// Build discovers every asset under devicesRoot, extracts its metadata and
// returns the sorted catalog. Record paths are relative to repoRoot.
//
// A missing devicesRoot fails with discovery.ErrRootNotFound. A single
// undecodable asset fails the whole build: no partial catalog is ever
// written for a corrupt tree. Cancellation is observed between assets; a
// detection that already started runs to completion.
func (b *Builder) Build(ctx context.Context, devicesRoot, repoRoot string) (*Catalog, error) {
	assets, err := discovery.Discover(devicesRoot, b.config.Extensions)
	if err != nil {
		return nil, err
	}

	workers := b.config.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	slog.Debug("building catalog", "assets", len(assets), "workers", workers)

	type outcome struct {
		record Record
		err    error
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)
	results := make(chan outcome, len(assets))

	for _, asset := range assets {
		wg.Add(1)
		go func(asset discovery.Asset) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := ctx.Err(); err != nil {
				results <- outcome{err: err}
				return
			}

			// Each worker owns its decoded image exclusively and releases
			// it as soon as the record is assembled.
			img, err := b.open(asset.Path)
			if err != nil {
				results <- outcome{err: fmt.Errorf("decoding %s: %w", asset.Path, err)}
				return
			}
			record, err := b.assembler.Describe(asset, img, repoRoot)
			results <- outcome{record: record, err: err}
		}(asset)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	files := make([]Record, 0, len(assets))
	var firstErr error
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		files = append(files, out.record)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.RelativePath < b.RelativePath
	})

	return &Catalog{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		FilesCount:  len(files),
		Files:       files,
	}, nil
}
