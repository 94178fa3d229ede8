package gui

// Texture is a shared handle to a decoded image backed by a GPU
// resource. Several style sheets may reference the same texture;
// ownership is reference-counted and the backing resource is freed when
// the last holder releases it.
//
// The render/ sub-package provides the concrete implementation; the
// layout core only moves handles around.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height uint32)

	// Retain adds a reference.
	Retain()

	// Release drops a reference. Releasing the last reference destroys
	// the backing GPU resource.
	Release()
}
