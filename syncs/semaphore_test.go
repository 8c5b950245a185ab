package syncs

import "testing"

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	sem.Acquire()
	select {
	case sem <- true:
		t.Fatal("should be full")
	default:
	}
	sem.Release()
	sem.Acquire()
	sem.Release()
}
