package registry

import (
	"testing"

	"bitset"
)

func TestRegisterAndGet(t *testing.T) {
	r := New()
	b, err := bitset.NewFromInts([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	handle := r.Register(b)
	got, err := r.Get(handle)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(b) {
		t.Errorf("Get(%q) = %v, want %v", handle, got, b)
	}
}

func TestRegisterDedupsByFingerprint(t *testing.T) {
	r := New()
	a, _ := bitset.NewFromInts([]int{1, 2})
	b, _ := bitset.NewFromInts([]int{1, 2})
	h1 := r.Register(a)
	h2 := r.Register(b)
	if h1 != h2 {
		t.Errorf("equal bitmaps got distinct handles: %q, %q", h1, h2)
	}
}

func TestGetMissingHandleFails(t *testing.T) {
	r := New()
	if _, err := r.Get("no-such-handle"); err == nil {
		t.Errorf("Get of missing handle succeeded, want an error")
	}
}

func TestForgetRemovesHandle(t *testing.T) {
	r := New()
	b, _ := bitset.NewFromInts([]int{1})
	handle := r.Register(b)
	r.Forget(handle)
	if _, err := r.Get(handle); err == nil {
		t.Errorf("Get after Forget succeeded, want an error")
	}
	if len(r.Handles()) != 0 {
		t.Errorf("Handles() after Forget = %v, want empty", r.Handles())
	}
}
