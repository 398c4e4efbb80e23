//go:build arm64

package vecsim

func init() {
	// NEON is baseline on arm64; its registers hold 4 float32 lanes.
	kernelImpl = dotNorms4
	kernelDesc = "4-wide (NEON)"
}
