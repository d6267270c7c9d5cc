package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/astrobench/dummyqhy/internal/config"
	"github.com/astrobench/dummyqhy/internal/debug"
	"github.com/astrobench/dummyqhy/internal/hw/qhy"
)

func main() {
	// CLI flags
	cfgPath := flag.String("config", filepath.Join("configs", "default.yaml"), "path to config file")
	captures := flag.Int("captures", 0, "override capture count (0 = use config default)")
	debugLevel := flag.Int("debug", -1, "override debug level 0-4 (-1 = use config default)")
	flag.Parse()

	if err := config.ValidateConfigPath(*cfgPath); err != nil {
		log.Fatalf("invalid config path: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// Validate CLI overrides (zero values mean "use config default")
	if err := validateCLIOverrides(*captures, *debugLevel); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}
	applyOverrides(cfg, *captures, *debugLevel)

	// Initialize debug system
	debug.Init(cfg.Defaults.DebugLevel)
	debug.Section("Initialization")
	debug.Value("Config path", *cfgPath)
	debug.Value("Debug level", cfg.Defaults.DebugLevel)
	debug.Value("Camera type", cfg.Camera.Type)
	debug.Value("Session handle", cfg.Camera.Handle)

	debug.Step(1, "Selecting capture implementation")
	cam, err := newCapturerFromConfig(cfg)
	if err != nil {
		log.Fatalf("init capturer failed: %v", err)
	}

	if err := run(cfg, cam); err != nil {
		log.Fatalf("capture failed: %v", err)
	}
}

// run exercises the SDK the way acquisition code would: size a buffer
// from MemLength, capture the configured number of frames, and report
// descriptors, buffer address, and the frame content.
func run(cfg *config.Config, cam qhy.Capturer) error {
	h := qhy.Handle(cfg.Camera.Handle)

	debug.Step(2, "Sizing image buffer")
	memLen := qhy.MemLength(h)
	img := make([]byte, memLen)
	debug.Value("Buffer size (bytes)", memLen)

	if cfg.Defaults.ListControls && debug.IsEnabled(debug.LevelVerbose) {
		debug.Section("Known Controls")
		for _, id := range qhy.ControlIDs() {
			debug.Verbose("%4d  %s", int32(id), id)
		}
	}

	debug.Step(3, "Capturing")
	for n := 1; n <= cfg.Defaults.Captures; n++ {
		debug.Live("Capture %d/%d", n, cfg.Defaults.Captures)

		var w, ht, bpp, ch uint32
		status := cam.SingleFrameCapture(h, &w, &ht, &bpp, &ch, img)
		if status != qhy.Success {
			return fmt.Errorf("single frame capture: %s (status %d)", status, uint32(status))
		}

		debug.Value("Width", w)
		debug.Value("Height", ht)
		debug.Value("Bits per pixel", bpp)
		debug.Value("Channels", ch)

		if cfg.Defaults.ProbeAddress {
			debug.Pointer("Image buffer", qhy.BufferAddressProbe(img))
		}
		if cfg.Defaults.DumpFrame {
			for _, row := range formatFrameRows(img, int(w), int(ht)) {
				debug.Verbose("%s", row)
			}
		}
	}

	debug.Summary("Capture Complete")
	return nil
}

// formatFrameRows renders a mono frame as one hex string per row.
func formatFrameRows(img []byte, w, h int) []string {
	rows := make([]string, 0, h)
	for y := 0; y < h; y++ {
		rows = append(rows, fmt.Sprintf("row %d: % x", y, img[y*w:(y+1)*w]))
	}
	return rows
}

// validateCLIOverrides checks that CLI overrides are within valid ranges.
// Zero/sentinel values are ignored (they mean "use config default").
func validateCLIOverrides(captures, debugLevel int) error {
	if captures != 0 {
		if captures < 0 || captures > config.MaxCaptures {
			return fmt.Errorf("captures must be between 1 and %d, got %d", config.MaxCaptures, captures)
		}
	}
	if debugLevel != -1 {
		if debugLevel < 0 || debugLevel > 4 {
			return fmt.Errorf("debug level must be between 0 and 4, got %d", debugLevel)
		}
	}
	return nil
}

// applyOverrides mutates cfg with overrides. Sentinel values (0 captures,
// -1 debug level) leave the config value in place.
func applyOverrides(cfg *config.Config, captures, debugLevel int) {
	if captures > 0 {
		cfg.Defaults.Captures = captures
	}
	if debugLevel >= 0 {
		cfg.Defaults.DebugLevel = debugLevel
	}
}

// newCapturerFromConfig selects a capture implementation based on configuration.
func newCapturerFromConfig(cfg *config.Config) (qhy.Capturer, error) {
	switch cfg.Camera.Type {
	case "dummy":
		return qhy.Dummy{}, nil
	default:
		return nil, fmt.Errorf("unsupported camera type: %s", cfg.Camera.Type)
	}
}
