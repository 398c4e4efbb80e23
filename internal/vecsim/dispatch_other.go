//go:build !amd64 && !arm64

package vecsim

// Unprobed architectures keep the scalar default from kernel.go.
