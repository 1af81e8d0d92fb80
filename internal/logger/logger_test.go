package logger

import "testing"

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode, "warn")
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.With("component", "test").Debug("dropped below warn")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("dev", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}
