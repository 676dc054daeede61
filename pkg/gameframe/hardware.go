package gameframe

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner runs a probe and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// HardwareInfo is what the probes found. Unknown values read "unknown".
type HardwareInfo struct {
	GPUVendor     string
	VulkanSupport bool
	OpenGLVersion string
	XWayland      bool
}

// Detector probes the graphics stack with the usual command line tools.
type Detector struct {
	Run     CommandRunner
	Timeout time.Duration // per probe
}

// NewDetector returns a Detector that runs real commands.
func NewDetector() *Detector {
	return &Detector{
		Run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		Timeout: 5 * time.Second,
	}
}

// Detect runs every probe. A probe that fails or times out leaves its field
// at the unknown/false value.
func (d *Detector) Detect(ctx context.Context) HardwareInfo {
	info := HardwareInfo{
		GPUVendor:     "unknown",
		OpenGLVersion: "unknown",
	}

	if out, err := d.probe(ctx, "lspci", "-v"); err == nil {
		info.GPUVendor = parseGPUVendor(string(out))
	}
	if _, err := d.probe(ctx, "vulkaninfo", "--summary"); err == nil {
		info.VulkanSupport = true
	}
	if out, err := d.probe(ctx, "glxinfo"); err == nil {
		info.OpenGLVersion = parseOpenGLVersion(string(out))
	}
	if _, err := d.probe(ctx, "xwayland", "-version"); err == nil {
		info.XWayland = true
	}

	return info
}

func (d *Detector) probe(ctx context.Context, name string, args ...string) ([]byte, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}
	return d.Run(ctx, name, args...)
}

// parseGPUVendor picks the first known vendor in lspci output, checked in
// NVIDIA, AMD, Intel order.
func parseGPUVendor(lspci string) string {
	switch {
	case strings.Contains(lspci, "NVIDIA"):
		return "nvidia"
	case strings.Contains(lspci, "AMD"):
		return "amd"
	case strings.Contains(lspci, "Intel"):
		return "intel"
	}
	return "unknown"
}

func parseOpenGLVersion(glxinfo string) string {
	for _, line := range strings.Split(glxinfo, "\n") {
		if !strings.Contains(line, "OpenGL version") {
			continue
		}
		if _, version, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(version)
		}
	}
	return "unknown"
}

// SuggestFPSLimit maps a GPU temperature in °C to a frame-rate cap.
func SuggestFPSLimit(tempC int) int {
	switch {
	case tempC > 85:
		return 30
	case tempC > 70:
		return 60
	case tempC > 50:
		return 120
	}
	return 144
}
