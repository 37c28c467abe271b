package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raykernel/pkg/canvas"
	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/demo"
	"github.com/df07/go-raykernel/pkg/renderer"
	"github.com/df07/go-raykernel/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and renders the requested scene or demo. Images go to stdout when -out is "-",
// which is the default for demos. Progress is logged to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("raykernel", flag.ContinueOnError)
	flags.SetOutput(stderr)
	sceneName := flags.String("scene", "silhouette", "Scene name or path to a .json scene file")
	demoName := flags.String("demo", "", "Run a demo instead of a scene: "+strings.Join(demo.Names(), ", "))
	formatName := flags.String("format", "ppm", "Output format: ppm, png or bmp")
	out := flags.String("out", "", "Output file, '-' for stdout (default output/<name>/render_<timestamp>.<format>, stdout for demos)")
	workers := flags.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	tileSize := flags.Int("tile", 64, "Tile size in pixels")
	help := flags.Bool("help", false, "Show help information")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *help {
		printHelp(stdout, flags)
		return nil
	}

	format, err := canvas.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	if *demoName != "" && demo.IsText(*demoName) {
		return demo.Print(*demoName, renderer.NewWriterLogger(stdout))
	}
	if *demoName != "" && *out == "" {
		*out = "-"
	}

	logger := renderer.NewWriterLogger(stderr)

	var img *canvas.Canvas
	name := *sceneName
	if *demoName != "" {
		name = *demoName
		logger.Printf("Drawing demo %s...\n", name)
		if img, err = demo.Draw(name); err != nil {
			return err
		}
	} else {
		s, err := createScene(name)
		if err != nil {
			return err
		}
		img, err = renderScene(s, renderer.Config{TileSize: *tileSize, NumWorkers: *workers}, logger)
		if err != nil {
			return err
		}
		name = s.Name
	}

	if *out == "-" {
		return img.Encode(stdout, format)
	}

	filename := *out
	if filename == "" {
		outputDir := filepath.Join("output", name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}
	if err := saveImage(img, filename, format); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in scene name or a .json scene file path
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.Create(name)
}

func renderScene(s *scene.Scene, config renderer.Config, logger core.Logger) (*canvas.Canvas, error) {
	img := s.NewCanvas()
	tr := renderer.NewTiledRenderer(s, config, logger)
	if _, err := tr.Render(context.Background(), img); err != nil {
		return nil, err
	}
	return img, nil
}

func saveImage(img *canvas.Canvas, filename string, format canvas.Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := img.Encode(file, format); err != nil {
		return fmt.Errorf("failed to save %s: %w", format, err)
	}
	return file.Close()
}

func printHelp(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Ray Kernel")
	fmt.Fprintln(w, "Usage: raykernel [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.List() {
		fmt.Fprintf(w, "  %-11s - %s\n", info.Name, info.Description)
	}
	fmt.Fprintln(w, "  <file>.json - Scene loaded from a JSON file")
}
