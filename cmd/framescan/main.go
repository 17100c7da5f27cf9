// Package main provides framescan, an offline audit of a frame directory.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/TanmayQuidich/ts-container/pkg/adapters/keyframes"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/osfilesystem"
	"github.com/TanmayQuidich/ts-container/pkg/feeder"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

func main() {
	app := &cli.App{
		Name:   "framescan",
		Usage:  "Audit a frame directory: index range, gaps and keyframe ratio",
		Action: scanDirectory,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Frame directory to audit",
			},
			&cli.StringFlag{
				Name:     "camera",
				Required: true,
				Usage:    "Camera ID embedded in frame filenames",
			},
			&cli.StringFlag{
				Name:  "extension",
				Value: "hevc",
				Usage: "Frame file extension",
			},
			&cli.StringFlag{
				Name:  "keyframe-mode",
				Value: "size",
				Usage: "Keyframe classifier (size, bitstream)",
			},
			&cli.IntFlag{
				Name:  "keyframe-threshold",
				Value: keyframes.DefaultSizeThreshold,
				Usage: "Size threshold for the size classifier",
			},
			&cli.BoolFlag{
				Name:  "gaps",
				Usage: "List every gap instead of just the count",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func scanDirectory(c *cli.Context) error {
	dir := c.String("dir")
	camera := c.String("camera")
	ext := c.String("extension")

	var classifier ports.KeyframeClassifier
	var classifierDesc string
	if c.String("keyframe-mode") == "bitstream" {
		classifier = keyframes.NewHEVC()
		classifierDesc = "bitstream inspection"
	} else {
		threshold := c.Int("keyframe-threshold")
		classifier = keyframes.NewSize(threshold)
		classifierDesc = fmt.Sprintf("size >= %d", threshold)
	}

	fs := osfilesystem.New()
	names, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}

	var indices []uint64
	for _, name := range names {
		if index, ok := feeder.ParseFrameIndex(name, camera, ext); ok {
			indices = append(indices, index)
		}
	}
	if len(indices) == 0 {
		return fmt.Errorf("no %s frames for camera %s in %s", ext, camera, dir)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	// Gaps between consecutive indices
	var gapCount int
	var missing uint64
	for i := 1; i < len(indices); i++ {
		prev, next := indices[i-1], indices[i]
		if next > prev+1 {
			gapCount++
			missing += next - prev - 1
			if c.Bool("gaps") {
				fmt.Printf("gap %d..%d (%d missing)\n", prev+1, next-1, next-prev-1)
			}
		}
	}

	// Classify every frame present
	var keyframeCount int
	var totalBytes int64
	for _, index := range indices {
		path := dir + "/" + feeder.FrameFilename(camera, index, ext)
		data, err := fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read frame %d: %w", index, err)
		}
		totalBytes += int64(len(data))
		if classifier.Keyframe(data) {
			keyframeCount++
		}
	}

	ratio := 100 * float64(keyframeCount) / float64(len(indices))
	mean := totalBytes / int64(len(indices))

	fmt.Printf("Frames:    %d (camera %s, .%s)\n", len(indices), camera, ext)
	fmt.Printf("Range:     %d..%d\n", indices[0], indices[len(indices)-1])
	fmt.Printf("Gaps:      %d (%d missing indices)\n", gapCount, missing)
	fmt.Printf("Keyframes: %d/%d (%.1f%%) under %s\n", keyframeCount, len(indices), ratio, classifierDesc)
	fmt.Printf("Bytes:     %s total, %s mean\n", formatBytes(totalBytes), formatBytes(mean))

	return nil
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
