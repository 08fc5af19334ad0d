//go:build gpu

package main

// Building with -tags gpu registers the gg GPU accelerator. Rendering falls
// back to the CPU rasterizer when no adapter is available.
import _ "github.com/gogpu/gg/gpu"
