package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"strconv"
	"strings"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/regions"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

// siteParams - откуда брать станции
type siteParams struct {
	Width, Height int
	Stations      int
	Random        bool
	Seed          int64
}

// validate проверяет размеры холста и, если станции генерируются, их число
func (p siteParams) validate(generated bool) error {
	if p.Width < 1 || p.Width > maxCanvas || p.Height < 1 || p.Height > maxCanvas {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "canvas must be within [1, %d] on each side, got %dx%d", maxCanvas, p.Width, p.Height)
	}
	if generated && (p.Stations < 0 || p.Stations > maxStations) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "stations must be in [0, %d], got %d", maxStations, p.Stations)
	}
	return nil
}

func (p siteParams) generate() []voronoi.Vertex {
	if p.Random {
		return generateRandStations(rand.New(rand.NewSource(p.Seed)), p.Stations, p.Width, p.Height)
	}
	return generateFixStations(p.Stations, p.Width, p.Height)
}

// readSites читает CSV вида "x,y" по строке на сайт. Строки с # пропускаются,
// первая строка может быть заголовком.
func readSites(r io.Reader) ([]voronoi.Vertex, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var sites []voronoi.Vertex
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read sites")
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errX != nil || errY != nil {
			if line == 1 && len(sites) == 0 {
				continue
			}
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "record %d: %q is not a pair of numbers", line, record)
		}
		sites = append(sites, voronoi.Vertex{X: x, Y: y})
	}
	return sites, nil
}

type cellJSON struct {
	Site    int          `json:"site"`
	Indices []int        `json:"indices"`
	Polygon [][2]float64 `json:"polygon"`
}

type cellsJSON struct {
	Sites    [][2]float64 `json:"sites"`
	Vertices [][2]float64 `json:"vertices"`
	// Finite - сколько первых вершин пришли из диаграммы, остальные синтезированы
	Finite int        `json:"finite"`
	Cells  []cellJSON `json:"cells"`
}

func pairs(points []voronoi.Vertex) [][2]float64 {
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func writeCellsJSON(w io.Writer, sites []voronoi.Vertex, res *regions.Result) error {
	doc := cellsJSON{
		Sites:    pairs(sites),
		Vertices: pairs(res.Vertices),
		Finite:   res.Finite,
		Cells:    make([]cellJSON, len(res.Cells)),
	}
	for i, c := range res.Cells {
		doc.Cells[i] = cellJSON{Site: c.Site, Indices: c.Indices, Polygon: pairs(c.Polygon)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
