package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/voronoi-regions/pkg/config"
	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/regions"
	"github.com/0x0FACED/voronoi-regions/pkg/render"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

type cellsOptions struct {
	sitesPath string
	format    string
	output    string
	params    siteParams
}

func (a *app) cellsCommand() *cobra.Command {
	var o cellsOptions

	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Build cells once and write them as JSON or PNG",
		Example: `  app cells --sites sites.csv --format png -o cells.png
  app cells --stations 40 --random --seed 7`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			// незаданные флаги берём из конфига
			flags := cmd.Flags()
			if !flags.Changed("width") {
				o.params.Width = a.cfg.Canvas.Width
			}
			if !flags.Changed("height") {
				o.params.Height = a.cfg.Canvas.Height
			}
			if !flags.Changed("stations") {
				o.params.Stations = a.cfg.Sites.Count
			}
			if !flags.Changed("random") {
				o.params.Random = a.cfg.Sites.Random
			}
			if !flags.Changed("seed") {
				o.params.Seed = a.cfg.Sites.Seed
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if o.output != "" {
				f, err := os.Create(o.output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return a.runCells(o, out)
		},
	}

	cmd.Flags().StringVar(&o.sitesPath, "sites", "", "CSV file with x,y per line (generated when empty)")
	cmd.Flags().StringVar(&o.format, "format", "json", "output format: json or png")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (stdout when empty)")
	cmd.Flags().IntVar(&o.params.Width, "width", 0, "canvas width")
	cmd.Flags().IntVar(&o.params.Height, "height", 0, "canvas height")
	cmd.Flags().IntVar(&o.params.Stations, "stations", 0, "number of generated sites")
	cmd.Flags().BoolVar(&o.params.Random, "random", false, "place generated sites at random")
	cmd.Flags().Int64Var(&o.params.Seed, "seed", 0, "random seed")

	return cmd
}

func (a *app) runCells(o cellsOptions, out io.Writer) error {
	if o.format != "json" && o.format != "png" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown format %q", o.format)
	}
	if err := o.params.validate(o.sitesPath == ""); err != nil {
		return err
	}

	var sites []voronoi.Vertex
	view := render.Viewport{MaxX: float64(o.params.Width), MaxY: float64(o.params.Height)}
	if o.sitesPath != "" {
		f, err := os.Open(o.sitesPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if sites, err = readSites(f); err != nil {
			return err
		}
		view = render.Fit(sites, a.cfg.Canvas.Padding)
	} else {
		sites = o.params.generate()
	}

	a.log.Info("[cells] Sites", zap.Int("count", len(sites)), zap.String("format", o.format))

	res, err := regions.Synthesize(sites, a.log)
	if err != nil {
		return err
	}

	if o.format == "json" {
		return writeCellsJSON(out, sites, res)
	}
	frame := render.Frame{Width: o.params.Width, Height: o.params.Height, View: view}
	return render.PNG(out, res, sites, frame, renderStyle(a.cfg.Style))
}

func renderStyle(c config.Style) render.Style {
	return render.Style{
		Palette:    c.Palette,
		Opacity:    c.Opacity,
		Background: c.Background,
		SiteRadius: c.SiteRadius,
	}
}
