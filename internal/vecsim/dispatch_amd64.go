//go:build amd64

package vecsim

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		kernelImpl = dotNorms8
		kernelDesc = "8-wide (AVX2+FMA)"
	case cpu.X86.HasSSE41:
		kernelImpl = dotNorms4
		kernelDesc = "4-wide (SSE4)"
	}
	// Anything older keeps the scalar default.
}
