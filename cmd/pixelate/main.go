package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/spritetools/pixelate/internal/batch"
	"github.com/spritetools/pixelate/internal/pixelart"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func init() {
	// Free up -v for --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := &cli.App{
		Name:    "pixelate",
		Usage:   "convert PNG/TGA images into pixel-art style textures",
		Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "image file or directory of images to process",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output directory (default: alongside the input)",
				EnvVars: []string{"PIXELATE_OUTPUT"},
			},
			&cli.IntFlag{
				Name:    "pixel-size",
				Aliases: []string{"p"},
				Value:   16,
				Usage:   "pixelation level; suggested values are 4, 8, 16 and 32",
			},
			&cli.BoolFlag{
				Name:    "auto-adjust",
				Aliases: []string{"a"},
				Usage:   "apply auto-contrast to enhance clarity",
			},
			&cli.BoolFlag{
				Name:    "spritemap",
				Aliases: []string{"s"},
				Usage:   "tile all processed images into a single spritemap.png",
			},
			&cli.StringFlag{
				Name:  "background",
				Usage: "spritemap cell fill as #RRGGBB (default: transparent)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log per-file progress to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	opts := batch.Options{
		PixelSize:  c.Int("pixel-size"),
		AutoAdjust: c.Bool("auto-adjust"),
		Spritemap:  c.Bool("spritemap"),
		OutputDir:  c.String("output"),
	}
	if opts.PixelSize < 1 {
		return cli.Exit(fmt.Sprintf("pixel size must be >= 1, got %d", opts.PixelSize), 1)
	}
	if hex := c.String("background"); hex != "" {
		bg, err := pixelart.ParseBackground(hex)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		opts.Background = bg
	}

	summary, err := batch.New(opts, logger).Run(c.String("input"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(c.App.Writer, "processed %d image(s) into %s\n", summary.Processed, summary.OutputDir)
	if summary.Skipped > 0 {
		fmt.Fprintf(c.App.Writer, "skipped %d file(s), rerun with --verbose for details\n", summary.Skipped)
	}
	if summary.SpritemapPath != "" {
		fmt.Fprintf(c.App.Writer, "spritemap written to %s\n", summary.SpritemapPath)
	}

	return nil
}
