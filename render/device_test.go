// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
}

func TestHalExtraction_NoHALProvider(t *testing.T) {
	if _, ok := halDevice(NullDeviceHandle{}); ok {
		t.Error("halDevice should not resolve for a provider without HAL handles")
	}
	if _, ok := halQueue(NullDeviceHandle{}); ok {
		t.Error("halQueue should not resolve for a provider without HAL handles")
	}
}

// halNilProvider exposes the HAL accessors but returns nothing,
// matching hosts running on a non-HAL backend.
type halNilProvider struct {
	NullDeviceHandle
}

func (halNilProvider) HalDevice() any { return nil }
func (halNilProvider) HalQueue() any  { return nil }

func TestHalExtraction_NilHandles(t *testing.T) {
	if _, ok := halDevice(halNilProvider{}); ok {
		t.Error("halDevice should not resolve a nil handle")
	}
	if _, ok := halQueue(halNilProvider{}); ok {
		t.Error("halQueue should not resolve a nil handle")
	}
}
