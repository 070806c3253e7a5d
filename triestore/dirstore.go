package triestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
)

// CompressedSuffix marks xz compressed files in a DirStore.
const CompressedSuffix = ".xz"

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

type DirLister interface {
	// ListFiles returns the names of the files (not subdirectories) in a
	// directory
	ListFiles(string) ([]string, error)
}

// OsOpener opens files on the local filesystem.
type OsOpener struct{}

func (OsOpener) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

// OsDirLister lists regular files on the local filesystem.
type OsDirLister struct{}

func (OsDirLister) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// DirStore reads tries from files under a root directory. A name resolves to
// root/name, or root/name.xz when the plain file does not exist.
type DirStore struct {
	log    logger.Logger
	root   string
	opener Opener
	lister DirLister
}

func NewDirStore(log logger.Logger, root string, opener Opener, lister DirLister) *DirStore {
	return &DirStore{log: log, root: root, opener: opener, lister: lister}
}

func (s *DirStore) path(name string) (string, error) {
	clean := filepath.Clean(name)
	if name == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *DirStore) Read(ctx context.Context, name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	for _, candidate := range []string{p, p + CompressedSuffix} {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		b, err := s.readFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.log.Debugf("triestore: read %s (%d bytes)", candidate, len(b))
		return b, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

func (s *DirStore) readFile(p string) ([]byte, error) {
	f, err := s.opener.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// List returns the trie names in the root directory, with any compression
// suffix removed, sorted.
func (s *DirStore) List() ([]string, error) {
	files, err := s.lister.ListFiles(s.root)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var names []string
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), CompressedSuffix)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
