// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	c, err := New(NullDeviceHandle{}, 800, 600)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestTextureFromBytes(t *testing.T) {
	c := testContext(t)

	tex, err := c.TextureFromBytes(encodePNG(t, 16, 8), "checker")
	if err != nil {
		t.Fatalf("TextureFromBytes: %v", err)
	}
	defer tex.Release()

	if w, h := tex.Size(); w != 16 || h != 8 {
		t.Errorf("Size() = %dx%d, want 16x8", w, h)
	}
	if tex.Label() != "checker" {
		t.Errorf("Label() = %q, want checker", tex.Label())
	}
	if tex.Refs() != 1 {
		t.Errorf("fresh texture refs = %d, want 1", tex.Refs())
	}
}

func TestTextureFromBytes_Errors(t *testing.T) {
	c := testContext(t)

	if _, err := c.TextureFromBytes(nil, "empty"); !errors.Is(err, ErrEmptyData) {
		t.Errorf("empty data error = %v, want ErrEmptyData", err)
	}
	if _, err := c.TextureFromBytes([]byte("not an image"), "garbage"); err == nil {
		t.Error("garbage data should fail to decode")
	}
}

func TestTextureFromImage_DownscalesToLimit(t *testing.T) {
	c := testContext(t)
	c.maxTextureSize = 16

	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	tex := c.TextureFromImage(img, "big")
	defer tex.Release()

	w, h := tex.Size()
	if w != 16 || h != 8 {
		t.Errorf("downscaled size = %dx%d, want 16x8 (aspect preserved)", w, h)
	}
}

func TestTextureFromImage_TallDownscale(t *testing.T) {
	c := testContext(t)
	c.maxTextureSize = 10

	img := image.NewRGBA(image.Rect(0, 0, 20, 40))
	tex := c.TextureFromImage(img, "tall")
	defer tex.Release()

	w, h := tex.Size()
	if w != 5 || h != 10 {
		t.Errorf("downscaled size = %dx%d, want 5x10", w, h)
	}
}

func TestTextureFromFile(t *testing.T) {
	c := testContext(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	if err := os.WriteFile(path, encodePNG(t, 4, 4), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tex, err := c.TextureFromFile(path)
	if err != nil {
		t.Fatalf("TextureFromFile: %v", err)
	}
	defer tex.Release()

	if w, h := tex.Size(); w != 4 || h != 4 {
		t.Errorf("Size() = %dx%d, want 4x4", w, h)
	}
	if tex.Label() != "tex.png" {
		t.Errorf("Label() = %q, want file base name", tex.Label())
	}

	if _, err := c.TextureFromFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file should return an error")
	}
}

func TestTexture_RetainRelease(t *testing.T) {
	c := testContext(t)

	tex, err := c.TextureFromBytes(encodePNG(t, 2, 2), "refs")
	if err != nil {
		t.Fatalf("TextureFromBytes: %v", err)
	}

	tex.Retain()
	if tex.Refs() != 2 {
		t.Errorf("refs after retain = %d, want 2", tex.Refs())
	}

	tex.Release()
	if tex.Refs() != 1 {
		t.Errorf("refs after release = %d, want 1", tex.Refs())
	}

	tex.Release()
	if tex.Refs() != 0 {
		t.Errorf("refs after final release = %d, want 0", tex.Refs())
	}
	if tex.src != nil {
		t.Error("pixels should be dropped on the last release")
	}
}

func TestTexture_SharedAcrossStyles(t *testing.T) {
	c := testContext(t)

	tex, err := c.TextureFromBytes(encodePNG(t, 2, 2), "shared")
	if err != nil {
		t.Fatalf("TextureFromBytes: %v", err)
	}

	// Two style sheets hold and release the texture independently;
	// the creator's own reference keeps it alive in between.
	tex.Retain()
	tex.Retain()
	tex.Release()
	tex.Release()

	if tex.Refs() != 1 || tex.src == nil {
		t.Errorf("texture should survive with the creator's reference, refs = %d", tex.Refs())
	}
	tex.Release()
}
