package registry

// defaultRegistry backs Default. It is created lazily on first access and
// survives until ResetDefault, mirroring how derivation scripts share one
// accumulating registry across a whole document build.
var defaultRegistry *Registry

// Default returns the shared process-wide registry, creating it on first
// call. Later calls return the same instance, so parameters registered by
// one simulation are visible to every other.
func Default() *Registry {
	if defaultRegistry == nil {
		defaultRegistry = New()
	}
	return defaultRegistry
}

// ResetDefault clears the shared registry. The next Default call returns a
// registry with no parameters and no formulas. Calling it when no shared
// registry exists yet is a no-op.
func ResetDefault() {
	if defaultRegistry != nil {
		defaultRegistry.Reset()
	}
}
