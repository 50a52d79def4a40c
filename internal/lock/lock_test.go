package lock

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json.lock")

	lk, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("lock file not created: %v", err)
	}

	if err := lk.Release(); err != nil {
		t.Errorf("Release() error = %v", err)
	}

	// Reacquire after release.
	lk2, err := Acquire(path)
	if err != nil {
		t.Fatalf("reacquire error = %v", err)
	}
	if err := lk2.Release(); err != nil {
		t.Errorf("Release() error = %v", err)
	}
}

func TestRelease_Twice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json.lock")

	lk, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := lk.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := lk.Release(); err != nil {
		t.Errorf("second Release() error = %v, want nil", err)
	}
}

func TestAcquire_SerializesHolders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json.lock")

	lk, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		second, err := Acquire(path)
		if err != nil {
			t.Errorf("second Acquire() error = %v", err)
			close(acquired)
			return
		}
		close(acquired)
		second.Release()
	}()

	// The second holder must block while the first holds the lock.
	select {
	case <-acquired:
		t.Fatal("second Acquire() succeeded while lock was held")
	case <-time.After(50 * time.Millisecond):
	}

	if err := lk.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second Acquire() never completed after release")
	}
}
