// SPDX-License-Identifier: MIT

package device

import "golang.org/x/sys/cpu"

// hostExtensions lists the SIMD features of the host CPU as extension names.
func hostExtensions() []string {
	var ext []string
	if cpu.X86.HasSSE41 {
		ext = append(ext, "sse4.1")
	}
	if cpu.X86.HasAVX2 {
		ext = append(ext, "avx2")
	}
	if cpu.X86.HasFMA {
		ext = append(ext, "fma")
	}
	if cpu.X86.HasAVX512F {
		ext = append(ext, "avx512f")
	}
	if cpu.ARM64.HasFP {
		ext = append(ext, "fp")
	}
	if cpu.ARM64.HasASIMD {
		ext = append(ext, "asimd")
	}

	return ext
}
