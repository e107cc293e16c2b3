package shred

import (
	"io"
	"os"
	"path/filepath"
)

// File is the slice of *os.File the engine drives during a shred.
type File interface {
	io.Writer
	io.Seeker
	Sync() error
	Close() error
	Stat() (os.FileInfo, error)
}

// Backend abstracts the filesystem calls the engine performs. The default
// implementation hits the OS directly; tests substitute a recording stub to
// observe write offsets, lengths and flushes.
type Backend interface {
	Lstat(path string) (os.FileInfo, error)
	Resolve(path string) (string, error)
	OpenExclusive(path string) (File, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
}

type osBackend struct{}

func (osBackend) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

func (osBackend) Resolve(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// OpenExclusive opens the file read-write without any userspace buffering
// and takes a non-blocking exclusive lock. The lock is released when the
// descriptor is closed.
func (osBackend) OpenExclusive(path string) (File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	if err := lockExclusive(f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (osBackend) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osBackend) Remove(path string) error {
	return os.Remove(path)
}
