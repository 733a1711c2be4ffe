package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/voronoi-regions/pkg/dendro"
	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/render"
)

// linksInput - дерево слияний и метки кластеров листьев
type linksInput struct {
	Merges [][2]int `json:"merges"`
	Labels []string `json:"labels"`
}

type linksOutput struct {
	Leaves []string `json:"leaves"`
	Links  []string `json:"links"`
}

func (a *app) linksCommand() *cobra.Command {
	var input, fallback string

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Colour dendrogram links by the clusters of their leaves",
		Long: `Reads {"merges": [[a, b], ...], "labels": [...]} where merge i creates node
n+i and labels holds the cluster of every leaf. A link keeps the colour of its
children when they agree and gets the fallback colour otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return a.runLinks(in, cmd.OutOrStdout(), fallback)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON input file, - for stdin")
	cmd.Flags().StringVar(&fallback, "fallback", dendro.DefaultColour, "colour of links joining different clusters")

	return cmd
}

func (a *app) runLinks(in io.Reader, out io.Writer, fallback string) error {
	var req linksInput
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode links input")
	}

	// каждый кластер получает свой цвет палитры в порядке первого появления
	clusters := make(map[string]int)
	for _, label := range req.Labels {
		if _, ok := clusters[label]; !ok {
			clusters[label] = len(clusters)
		}
	}
	colours, err := render.Palette(len(clusters), a.cfg.Style.Palette)
	if err != nil {
		return err
	}
	leaves := make([]string, len(req.Labels))
	for i, label := range req.Labels {
		leaves[i] = colours[clusters[label]]
	}

	merges := make([]dendro.Merge, len(req.Merges))
	for i, m := range req.Merges {
		merges[i] = dendro.Merge{Left: m[0], Right: m[1]}
	}

	nodes, err := dendro.Fold(merges, leaves, dendro.SameOrDefault(fallback))
	if err != nil {
		return err
	}

	a.log.Debug("[links] Folded",
		zap.Int("leaves", len(leaves)),
		zap.Int("clusters", len(clusters)))

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(linksOutput{Leaves: nodes[:len(leaves)], Links: nodes[len(leaves):]})
}
