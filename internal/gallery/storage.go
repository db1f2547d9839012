package gallery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/disk"
)

// DiskStorage is the Storage port backed by the local filesystem.
type DiskStorage struct{}

func (DiskStorage) WritePermitted(dir string) bool {
	base, err := existingAncestor(dir)
	if err != nil {
		return false
	}
	return canWrite(base)
}

// State mirrors the mounted / mounted read-only / missing distinction of
// removable storage: the nearest existing ancestor of dir has to live on a
// volume that reports usage, and is then writable or only readable.
func (DiskStorage) State(dir string) MediaState {
	base, err := existingAncestor(dir)
	if err != nil {
		return MediaUnavailable
	}
	if _, err := disk.Usage(base); err != nil {
		return MediaUnavailable
	}
	switch {
	case canWrite(base):
		return MediaWritable
	case canRead(base):
		return MediaReadOnly
	}
	return MediaUnavailable
}

func (DiskStorage) EnsureDir(dir string) error {
	fi, err := os.Stat(dir)
	if err == nil {
		if !fi.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (DiskStorage) FreeBytes(dir string) (uint64, error) {
	base, err := existingAncestor(dir)
	if err != nil {
		return 0, err
	}
	u, err := disk.Usage(base)
	if err != nil {
		return 0, err
	}
	return u.Free, nil
}

// Create writes to a hidden temporary file next to path and renames it into
// place on Commit, so a failed encode never leaves a half written picture.
func (DiskStorage) Create(path string) (File, error) {
	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	return &diskFile{f: f, tmp: tmp, path: path}, nil
}

type diskFile struct {
	f    *os.File
	tmp  string
	path string
}

func (d *diskFile) Write(p []byte) (int, error) {
	return d.f.Write(p)
}

func (d *diskFile) Commit() error {
	if err := d.f.Sync(); err != nil {
		d.Abort()
		return err
	}
	if err := d.f.Close(); err != nil {
		os.Remove(d.tmp)
		return err
	}
	if err := os.Rename(d.tmp, d.path); err != nil {
		os.Remove(d.tmp)
		return err
	}
	return nil
}

func (d *diskFile) Abort() error {
	err := d.f.Close()
	if rerr := os.Remove(d.tmp); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
		return rerr
	}
	return err
}

// existingAncestor returns dir or its closest parent that exists.
func existingAncestor(dir string) (string, error) {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
