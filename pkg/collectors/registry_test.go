package collectors

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// --- Registry Tests ---

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	c := newFake("test", time.Second)

	if err := r.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, ok := r.Get("test")
	if !ok {
		t.Fatal("Get returned false for registered collector")
	}
	if got.Name() != "test" {
		t.Errorf("Name = %q, want %q", got.Name(), "test")
	}
}

func TestRegistryDuplicateNameError(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newFake("dup", time.Second)); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	err := r.Register(newFake("dup", time.Second))
	if !errors.Is(err, ErrDuplicateCollector) {
		t.Fatalf("second Register error = %v, want ErrDuplicateCollector", err)
	}
}

func TestRegistryRejectsBadNames(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"", "hw/extra"} {
		err := r.Register(newFake(name, time.Second))
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("Register(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
	if n := len(r.List()); n != 0 {
		t.Errorf("List() has %d names, want 0", n)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newFake("gone", time.Second))

	r.Unregister("gone")
	r.Unregister("does-not-exist")

	if _, ok := r.Get("gone"); ok {
		t.Fatal("Get returned true after Unregister")
	}
	if _, ok := r.Status("gone"); ok {
		t.Fatal("Status returned true after Unregister")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	if len(r.List()) != 0 {
		t.Fatal("List should be empty for a new registry")
	}

	_ = r.Register(newFake("sensors", time.Second))
	_ = r.Register(newFake("demo", time.Second))
	_ = r.Register(newFake("static", time.Second))

	want := []string{"demo", "sensors", "static"}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryStatus(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newFake("sensors", time.Second))

	s, ok := r.Status("sensors")
	if !ok {
		t.Fatal("Status returned false for registered collector")
	}
	if s.Name != "sensors" {
		t.Errorf("Status.Name = %q, want %q", s.Name, "sensors")
	}
	if !s.Healthy {
		t.Error("initial status should be healthy")
	}
	if s.RunCount != 0 {
		t.Errorf("initial RunCount = %d, want 0", s.RunCount)
	}
	if _, ok := r.Status("nope"); ok {
		t.Error("Status should return false for unregistered collector")
	}
}

func TestRegistryAllStatusSorted(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(newFake("b", time.Second))
	_ = r.Register(newFake("a", time.Second))

	statuses := r.AllStatus()
	if len(statuses) != 2 {
		t.Fatalf("AllStatus returned %d, want 2", len(statuses))
	}
	if statuses[0].Name != "a" || statuses[1].Name != "b" {
		t.Errorf("AllStatus not sorted: got %q, %q", statuses[0].Name, statuses[1].Name)
	}
}

func TestRegistryConcurrentSafety(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = r.Register(newFake(fmt.Sprintf("concurrent-%d", n), time.Second))
			_ = r.AllStatus()
			_ = r.List()
		}(i)
	}
	wg.Wait()

	if n := len(r.List()); n != 10 {
		t.Errorf("expected 10 collectors, got %d", n)
	}
}
