// Package assets enumerates the installable theme assets the GUI offers as
// preference choices: background themes, piece sets, and board skins.
package assets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Subdirectory names under the assets root, one per preference field.
const (
	backgroundsDir = "backgrounds"
	piecesDir      = "pieces"
	boardsDir      = "boards"
)

// Catalog lists the asset names available for each display preference.
// Names are directory entries under the corresponding subdirectory, sorted.
type Catalog struct {
	Backgrounds []string `json:"backgrounds"`
	Pieces      []string `json:"pieces"`
	Boards      []string `json:"boards"`
}

// Scanner reads the asset tree rooted at a fixed directory.
type Scanner struct {
	root string
}

// NewScanner creates a Scanner for the given assets root directory.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Scan walks the three asset subdirectories concurrently and returns the
// catalog. A missing subdirectory yields an empty list rather than an
// error; the preferences UI simply has nothing to offer for that slot.
func (s *Scanner) Scan(ctx context.Context) (*Catalog, error) {
	var (
		cat Catalog
		mu  sync.Mutex
	)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(3)

	scan := func(sub string, dest *[]string) {
		g.Go(func() error {
			names, err := listEntries(filepath.Join(s.root, sub))
			if err != nil {
				return fmt.Errorf("scanning %s: %w", sub, err)
			}

			mu.Lock()
			*dest = names
			mu.Unlock()
			return nil
		})
	}

	scan(backgroundsDir, &cat.Backgrounds)
	scan(piecesDir, &cat.Pieces)
	scan(boardsDir, &cat.Boards)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("scanned asset catalog",
		"backgrounds", len(cat.Backgrounds),
		"pieces", len(cat.Pieces),
		"boards", len(cat.Boards),
	)
	return &cat, nil
}

// listEntries returns the sorted entry names of dir, stripped of file
// extensions. A missing dir returns an empty, non-nil slice.
func listEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name[0] == '.' {
			continue
		}
		if !entry.IsDir() {
			name = name[:len(name)-len(filepath.Ext(name))]
		}
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
