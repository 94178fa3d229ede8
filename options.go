package gui

// TreeOption configures a Tree during creation.
// Use functional options to customize Tree behavior.
//
// Example:
//
//	// Layout-only tree, no render target
//	tree := gui.NewTree(800, 600)
//
//	// Tree driving a GPU-bound context (dependency injection)
//	tree := gui.NewTree(800, 600, gui.WithTarget(ctx))
type TreeOption func(*treeOptions)

// treeOptions holds optional configuration for Tree creation.
type treeOptions struct {
	target Target
}

// defaultTreeOptions returns the default tree options.
func defaultTreeOptions() treeOptions {
	return treeOptions{
		target: nil, // Layout-only unless a target is injected
	}
}

// WithTarget attaches a render-bound target that is notified of
// viewport resizes. Use this to inject a render.Context.
func WithTarget(target Target) TreeOption {
	return func(o *treeOptions) {
		o.target = target
	}
}
