package config

// Render layers for ecs.AddRenderer, drawn in order. Untyped so this package
// stays free of engine imports.
const (
	Default = iota
	Overlay
)
