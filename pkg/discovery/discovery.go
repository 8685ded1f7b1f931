// Package discovery enumerates bezel assets under a devices root.
//
// The expected layout is devicesRoot/<category>/<device name>/...,
// where every matching file below a device directory is one asset.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrRootNotFound marks a missing devices root directory.
var ErrRootNotFound = errors.New("devices root not found")

// DefaultExtensions lists the file extensions discovered by default.
var DefaultExtensions = []string{".png"}

// Asset identifies one bezel image file.
type Asset struct {
	Category string
	Device   string
	Path     string
}

// Discover returns every asset under root, sorted by category, device name
// and path. Extensions are matched case-insensitively; a nil or empty exts
// falls back to DefaultExtensions.
func Discover(root string, exts []string) ([]Asset, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}

	categories, err := subdirs(root)
	if err != nil {
		return nil, err
	}

	var assets []Asset
	for _, category := range categories {
		devices, err := subdirs(filepath.Join(root, category))
		if err != nil {
			return nil, err
		}
		for _, device := range devices {
			deviceDir := filepath.Join(root, category, device)
			err := filepath.WalkDir(deviceDir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !wanted[strings.ToLower(filepath.Ext(path))] {
					return nil
				}
				assets = append(assets, Asset{
					Category: category,
					Device:   device,
					Path:     path,
				})
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", deviceDir, err)
			}
		}
	}

	sort.Slice(assets, func(i, j int) bool {
		a, b := assets[i], assets[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Device != b.Device {
			return a.Device < b.Device
		}
		return a.Path < b.Path
	})
	return assets, nil
}

// subdirs lists the immediate subdirectories of dir, sorted by name.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
