// Package fs reads draft folders from the local filesystem. Each folder
// under the drafts directory is one pending post: the folder name is the
// title, and the folder holds exactly one HTML file, exactly one image,
// and an optional meta.json override.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gold9-app/autopress"
	"golang.org/x/sync/errgroup"
)

// listConcurrency bounds the parallel folder scans during listing.
const listConcurrency = 8

var (
	htmlExts  = map[string]bool{".html": true, ".htm": true}
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".bmp": true}
)

// Ensure Store implements autopress.DraftStore at compile time.
var _ autopress.DraftStore = (*Store)(nil)

// Store reads drafts from a directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on
// first listing when missing.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the drafts directory path.
func (s *Store) Dir() string {
	return s.dir
}

// List returns one DraftInfo per folder, sorted by name. Folders are
// inspected concurrently; inspection is read-only so the listing never
// mutates a draft.
func (s *Store) List(ctx context.Context) ([]*autopress.DraftInfo, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	infos := make([]*autopress.DraftInfo, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, err := s.inspect(name)
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Load reads a complete draft from its folder. Count-based validation and
// the UTF-8 decode check run before anything touches the network.
func (s *Store) Load(name string) (*autopress.Draft, error) {
	folder := filepath.Join(s.dir, name)
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		return nil, autopress.Errorf(autopress.ENOTFOUND, "draft folder %q not found", name)
	}

	htmlFiles, imageFiles, errs, err := s.scanFolder(name)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, autopress.Errorf(autopress.EINVALID, "draft %q: %s", name, strings.Join(errs, ", "))
	}

	htmlData, err := os.ReadFile(filepath.Join(folder, htmlFiles[0]))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(htmlData) {
		return nil, autopress.Errorf(autopress.EINVALID, "draft %q: HTML file is not valid UTF-8", name)
	}

	imageData, err := os.ReadFile(filepath.Join(folder, imageFiles[0]))
	if err != nil {
		return nil, err
	}

	meta, err := s.loadMeta(folder)
	if err != nil {
		return nil, err
	}

	return &autopress.Draft{
		Title:     name,
		HTML:      string(htmlData),
		ImageName: imageFiles[0],
		ImageData: imageData,
		Meta:      meta,
	}, nil
}

// SaveHTML creates a draft folder containing only the HTML body, for
// generated articles awaiting an image.
func (s *Store) SaveHTML(name, html string) error {
	folder := filepath.Join(s.dir, name)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(folder, name+".html"), []byte(html), 0644)
}

func (s *Store) inspect(name string) (*autopress.DraftInfo, error) {
	htmlFiles, imageFiles, errs, err := s.scanFolder(name)
	if err != nil {
		return nil, err
	}

	info := &autopress.DraftInfo{
		Name:         name,
		Valid:        len(errs) == 0,
		Errors:       errs,
		HasMeta:      s.hasMeta(name),
		FocusKeyword: autopress.ExtractFocusKeyword(name),
	}
	if len(htmlFiles) > 0 {
		info.HTMLFile = htmlFiles[0]
	}
	if len(imageFiles) > 0 {
		info.ImageFile = imageFiles[0]
	}
	return info, nil
}

// scanFolder splits a folder's files by extension and returns count-based
// validation messages: a publishable draft needs exactly one HTML file and
// exactly one image.
func (s *Store) scanFolder(name string) (htmlFiles, imageFiles, errs []string, err error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, name))
	if err != nil {
		return nil, nil, nil, err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		switch {
		case htmlExts[ext]:
			htmlFiles = append(htmlFiles, e.Name())
		case imageExts[ext]:
			imageFiles = append(imageFiles, e.Name())
		}
	}
	sort.Strings(htmlFiles)
	sort.Strings(imageFiles)

	switch {
	case len(htmlFiles) == 0:
		errs = append(errs, "no HTML file")
	case len(htmlFiles) > 1:
		errs = append(errs, fmt.Sprintf("%d HTML files (need exactly 1)", len(htmlFiles)))
	}
	switch {
	case len(imageFiles) == 0:
		errs = append(errs, "no image file")
	case len(imageFiles) > 1:
		errs = append(errs, fmt.Sprintf("%d image files (need exactly 1)", len(imageFiles)))
	}
	return htmlFiles, imageFiles, errs, nil
}

func (s *Store) hasMeta(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name, "meta.json"))
	return err == nil
}

func (s *Store) loadMeta(folder string) (autopress.MetaOverride, error) {
	var meta autopress.MetaOverride

	data, err := os.ReadFile(filepath.Join(folder, "meta.json"))
	if os.IsNotExist(err) {
		return meta, nil
	}
	if err != nil {
		return meta, err
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, autopress.Errorf(autopress.EINVALID, "invalid meta.json: %v", err)
	}
	return meta, nil
}
