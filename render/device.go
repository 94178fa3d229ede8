// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g., gogpu.App) owns the device and queue and passes a
// provider into render.New; this package never creates a device of its
// own. DeviceHandle is an alias for gpucontext.DeviceProvider, giving
// the interface a package-local name while staying fully compatible
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for layout-only operation and in tests where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// halProvider is implemented by providers that expose raw wgpu/hal
// handles alongside the gpucontext interfaces.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halDevice extracts the hal.Device from a provider, if it exposes one.
func halDevice(provider DeviceHandle) (hal.Device, bool) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, false
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, false
	}
	return device, true
}

// halQueue extracts the hal.Queue from a provider, if it exposes one.
func halQueue(provider DeviceHandle) (hal.Queue, bool) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, false
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, false
	}
	return queue, true
}
