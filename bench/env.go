// SPDX-License-Identifier: MIT

package bench

import (
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// NewConsoleLogger returns a human-readable logger on f at info level.
// Colour is enabled only when f is a terminal.
func NewConsoleLogger(f *os.File) zerolog.Logger {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	w := zerolog.ConsoleWriter{Out: f, NoColor: !tty, TimeFormat: time.TimeOnly}

	return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// CPUFeatures returns the SIMD and crypto extensions relevant to float64
// kernels, keyed by name, for the running architecture. Unknown
// architectures yield an empty map.
func CPUFeatures() map[string]bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return map[string]bool{
			"sse4.1":  cpu.X86.HasSSE41,
			"sse4.2":  cpu.X86.HasSSE42,
			"avx":     cpu.X86.HasAVX,
			"avx2":    cpu.X86.HasAVX2,
			"fma":     cpu.X86.HasFMA,
			"avx512f": cpu.X86.HasAVX512F,
			"aes":     cpu.X86.HasAES,
		}
	case "arm64":
		return map[string]bool{
			"asimd":   cpu.ARM64.HasASIMD,
			"asimdhp": cpu.ARM64.HasASIMDHP,
			"fphp":    cpu.ARM64.HasFPHP,
		}
	default:
		return map[string]bool{}
	}
}

// LogEnvironment writes one info event describing the Go runtime and the
// detected CPU features.
func LogEnvironment(log zerolog.Logger) {
	features := CPUFeatures()
	enabled := make([]string, 0, len(features))
	for name, ok := range features {
		if ok {
			enabled = append(enabled, name)
		}
	}
	sort.Strings(enabled)

	log.Info().
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("cpus", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Strs("cpu_features", enabled).
		Msg("environment")
}
