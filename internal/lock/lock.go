// Package lock provides exclusive advisory file locks for state mutations.
//
// A whole-file load→mutate→save cycle with no lock loses updates when two
// invocations race; holding an exclusive flock for the full cycle serializes
// them instead.
package lock

import (
	"os"
	"syscall"
)

// Lock is an exclusive advisory lock backed by a file.
type Lock struct {
	file *os.File
}

// Acquire blocks until an exclusive lock on path is held.
// The lock file is created if absent and is left in place after release.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}

	return &Lock{file: f}, nil
}

// Release drops the lock and closes the backing file.
// Releasing an already-released lock is a no-op.
func (l *Lock) Release() error {
	if l.file == nil {
		return nil
	}

	err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
	cerr := l.file.Close()
	l.file = nil

	if err != nil {
		return err
	}
	return cerr
}
