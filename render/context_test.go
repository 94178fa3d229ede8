// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gui"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		provider DeviceHandle
		width    uint32
		height   uint32
		wantErr  error
	}{
		{"valid", NullDeviceHandle{}, 800, 600, nil},
		{"nil provider", nil, 800, 600, ErrNilProvider},
		{"zero width", NullDeviceHandle{}, 0, 600, ErrInvalidDimensions},
		{"zero height", NullDeviceHandle{}, 800, 0, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.provider, tt.width, tt.height)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if w, h := c.Size(); w != tt.width || h != tt.height {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}
			if c.Provider() == nil {
				t.Error("Provider() = nil")
			}
			if c.Pipelines() == nil {
				t.Error("Pipelines() = nil")
			}
		})
	}
}

func TestContext_Resize(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Resize(400, 300)
	if w, h := c.Size(); w != 400 || h != 300 {
		t.Errorf("Size() after resize = %dx%d, want 400x300", w, h)
	}

	// Zero-sized resizes are dropped, not applied.
	c.Resize(0, 300)
	if w, h := c.Size(); w != 400 || h != 300 {
		t.Errorf("Size() after zero resize = %dx%d, want unchanged 400x300", w, h)
	}
}

func TestContext_ImplementsTarget(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tree := gui.NewTree(800, 600, gui.WithTarget(c))
	if err := tree.Resize(1024, 768); err != nil {
		t.Fatalf("tree.Resize: %v", err)
	}
	if w, h := c.Size(); w != 1024 || h != 768 {
		t.Errorf("context size after tree resize = %dx%d, want 1024x768", w, h)
	}
}

func TestContext_SyncNilTree(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Sync(nil); !errors.Is(err, ErrNilTree) {
		t.Errorf("Sync(nil) = %v, want ErrNilTree", err)
	}
}

func TestContext_SyncEmptyTree(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Sync(gui.NewTree(800, 600)); err != nil {
		t.Errorf("Sync on entry-less tree: %v", err)
	}
}

func TestContext_SyncConsumesOwnFlags(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	re := NewElement()
	el := gui.NewElement().WithRenderable(re)
	tree := gui.NewTree(800, 600, gui.WithTarget(c))
	key := tree.Add(el)
	if err := tree.SetEntry(key); err != nil {
		t.Fatalf("SetEntry: %v", err)
	}

	*el.Style().BackgroundColorMut() = gui.Red
	el.Style().TextMut().Fit = true
	el.Style().BorderMut().Visible = true

	if err := c.Sync(tree); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	flags := el.Style().Dirty()
	if flags.DirtyColor || flags.DirtyTexture || flags.DirtyTransform || flags.RecalcTransform {
		t.Errorf("consumed flags still set: %+v", *flags)
	}
	// Aspects this backend does not render stay flagged for
	// collaborators that do.
	if !flags.DirtyText || !flags.DirtyBorder {
		t.Errorf("unconsumed flags were cleared: %+v", *flags)
	}
}

func TestContext_SyncPushesColor(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	re := NewElement()
	el := gui.NewElement().WithRenderable(re)
	tree := gui.NewTree(800, 600)
	key := tree.Add(el)
	if err := tree.SetEntry(key); err != nil {
		t.Fatalf("SetEntry: %v", err)
	}

	*el.Style().BackgroundColorMut() = gui.Blue
	if err := c.Sync(tree); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if re.color != gui.Blue {
		t.Errorf("synced color = %v, want Blue", re.color)
	}
}

func TestContext_SyncRelayoutsOnTransformChange(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	re := NewElement()
	el := gui.NewElement().WithRenderable(re)
	tree := gui.NewTree(800, 600)
	key := tree.Add(el)
	if err := tree.SetEntry(key); err != nil {
		t.Fatalf("SetEntry: %v", err)
	}
	if err := c.Sync(tree); err != nil {
		t.Fatalf("first Sync: %v", err)
	}

	el.Style().TransformMut().Width = gui.Pixels(200)
	if err := c.Sync(tree); err != nil {
		t.Fatalf("second Sync: %v", err)
	}

	if got := re.Transform().Scale.X; got != 200 {
		t.Errorf("width after declared change and sync = %v, want 200", got)
	}
}

func TestContext_DrawValidation(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Draw(nil, nil); !errors.Is(err, ErrNilTree) {
		t.Errorf("Draw(nil tree) = %v, want ErrNilTree", err)
	}
	if err := c.Draw(gui.NewTree(800, 600), nil); !errors.Is(err, ErrInvalidDrawContext) {
		t.Errorf("Draw(nil drawer) = %v, want ErrInvalidDrawContext", err)
	}
}

func TestContext_CloseIsIdempotent(t *testing.T) {
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Close()
	c.Close()
}
