// Package gallery saves rendered doodles as PNG pictures and keeps the media
// index that lists them.
//
// The save operation is plain decision logic over small ports (Storage,
// Indexer, Feedback) so its failure paths can be exercised without a real
// filesystem or a running GUI.
package gallery

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"Doodle/internal/export"
)

var (
	ErrPermissionDenied   = errors.New("no write permission for shared storage")
	ErrStorageUnavailable = errors.New("shared storage is unavailable")
	ErrCreateDir          = errors.New("could not create album directory")
	ErrWrite              = errors.New("could not write picture")
)

// Alert texts shown to the user.
const (
	AlertTitle         = "Whoops!"
	AlertCreateDir     = "ERROR: Failed to create directory!"
	AlertNotSaved      = "ERROR: Image not saved! Do you have enough space?"
	AlertNoPermissions = "ERROR: No permission to write pictures!"
)

type MediaState int

const (
	MediaUnavailable MediaState = iota
	MediaReadOnly
	MediaWritable
)

func (s MediaState) String() string {
	switch s {
	case MediaWritable:
		return "writable"
	case MediaReadOnly:
		return "read-only"
	}
	return "unavailable"
}

// Storage is the filesystem side of a save.
type Storage interface {
	WritePermitted(dir string) bool
	State(dir string) MediaState
	// EnsureDir creates dir when it does not exist yet.
	EnsureDir(dir string) error
	Create(path string) (File, error)
	// FreeBytes reports the free space available to dir, if known.
	FreeBytes(dir string) (uint64, error)
}

// File is a picture being written. Nothing is visible at its path until
// Commit succeeds; Abort discards what was written so far.
type File interface {
	io.Writer
	Commit() error
	Abort() error
}

// Indexer registers a freshly saved picture so galleries can find it.
// Implementations must not block the caller for long; failures are only
// logged.
type Indexer interface {
	Scan(e Entry) error
}

// Feedback shows the outcome of a save to the user.
type Feedback interface {
	Alert(title, message string)
	Toast(message string)
}

type Policy struct {
	// StrictPermissions aborts when write permission is missing. Off, a
	// missing permission is only logged and the write is attempted anyway.
	StrictPermissions bool
	// ToastOnFailure shows the "saved" toast after a failed write too.
	ToastOnFailure bool
}

type Saver struct {
	Dir      string
	Storage  Storage
	Index    Indexer
	Feedback Feedback
	Policy   Policy
	Now      func() time.Time
	Log      *slog.Logger
}

func NewSaver(dir string, storage Storage, index Indexer, feedback Feedback, policy Policy) *Saver {
	return &Saver{
		Dir:      dir,
		Storage:  storage,
		Index:    index,
		Feedback: feedback,
		Policy:   policy,
		Now:      time.Now,
		Log:      slog.Default().With("component", "gallery"),
	}
}

// FileName is the picture name for t: epoch milliseconds plus ".png".
func FileName(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10) + ".png"
}

// Save writes img into the album directory and returns the path of the new
// picture. Every failure has already been reported through Feedback when
// Save returns.
func (s *Saver) Save(img image.Image) (string, error) {
	if !s.Storage.WritePermitted(s.Dir) {
		s.Log.Error("[SAVE] no write permission", "dir", s.Dir)
		if s.Policy.StrictPermissions {
			s.alert(AlertNoPermissions)
			return "", ErrPermissionDenied
		}
	}

	st := s.Storage.State(s.Dir)
	if st == MediaUnavailable {
		s.Log.Warn("[SAVE] storage unavailable, nothing saved", "dir", s.Dir)
		return "", ErrStorageUnavailable
	}

	if err := s.Storage.EnsureDir(s.Dir); err != nil {
		s.Log.Error("[SAVE] directory not created", "dir", s.Dir, "err", err)
		s.alert(AlertCreateDir)
		return "", fmt.Errorf("%w: %s: %v", ErrCreateDir, s.Dir, err)
	}

	now := s.Now()
	path := filepath.Join(s.Dir, FileName(now))
	if err := s.write(path, img); err != nil {
		attrs := []any{"path", path, "err", err}
		if free, ferr := s.Storage.FreeBytes(s.Dir); ferr == nil {
			attrs = append(attrs, "free_bytes", free)
		}
		s.Log.Error("[SAVE] picture not written", attrs...)
		s.alert(AlertNotSaved)
		if s.Policy.ToastOnFailure {
			s.toast(path)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	s.toast(path)
	s.Log.Info("[SAVE] picture saved", "path", path)

	if s.Index != nil {
		b := img.Bounds()
		e := Entry{Path: path, Width: b.Dx(), Height: b.Dy(), SavedAt: now}
		if err := s.Index.Scan(e); err != nil {
			s.Log.Warn("[SAVE] media index not updated", "path", path, "err", err)
		} else {
			s.Log.Info("[SAVE] finished scanning", "path", path)
		}
	}
	return path, nil
}

func (s *Saver) write(path string, img image.Image) error {
	f, err := s.Storage.Create(path)
	if err != nil {
		return err
	}
	if err := export.EncodePNG(f, img); err != nil {
		if aerr := f.Abort(); aerr != nil {
			s.Log.Warn("[SAVE] partial picture not removed", "path", path, "err", aerr)
		}
		return err
	}
	return f.Commit()
}

func (s *Saver) alert(msg string) {
	if s.Feedback != nil {
		s.Feedback.Alert(AlertTitle, msg)
	}
}

func (s *Saver) toast(path string) {
	if s.Feedback != nil {
		s.Feedback.Toast(path + " saved!")
	}
}
