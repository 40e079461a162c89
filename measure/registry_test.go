package measure

import (
	"strings"
	"testing"

	"github.com/gogpu/bind/layout"
	"github.com/google/go-cmp/cmp"
)

func TestBuiltinMeasurers(t *testing.T) {
	want := []string{"cells", "fixed", "gotext", "opentype"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			m, err := New(name)
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			d := m.Measure("hello", layout.NewTextConfig())
			if d.Width <= 0 || d.Height <= 0 {
				t.Errorf("Measure(hello) = %+v, want positive size", d)
			}
		})
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("nope")
	if err == nil || !strings.Contains(err.Error(), "forgotten import?") {
		t.Errorf("New(nope) = %v, want unknown measurer error", err)
	}
}

func TestRegister(t *testing.T) {
	const name = "test-half"
	t.Cleanup(func() { Unregister(name) })

	Register(name, func() (layout.Measurer, error) {
		return layout.FixedAdvance{Advance: 0.5}, nil
	})
	if !IsRegistered(name) {
		t.Fatal("not registered")
	}

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for duplicate registration")
			}
		}()
		Register(name, func() (layout.Measurer, error) { return nil, nil })
	}()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for nil factory")
			}
		}()
		Register("test-nil", nil)
	}()

	Unregister(name)
	if IsRegistered(name) {
		t.Error("still registered after Unregister")
	}
	Unregister(name) // no-op
}
