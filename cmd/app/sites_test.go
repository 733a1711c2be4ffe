package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/regions"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

func TestReadSites(t *testing.T) {
	input := `x,y
# угол
0,0
10, 0
0,10
 10.5 ,1e1
`
	got, err := readSites(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readSites: %v", err)
	}
	want := []voronoi.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10.5, Y: 10}}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("site %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadSitesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad number", "0,0\n1,abc\n"},
		{"three fields", "0,0\n1,2,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readSites(strings.NewReader(tt.input))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
				t.Errorf("readSites() error = %v", err)
			}
		})
	}
}

func TestWriteCellsJSON(t *testing.T) {
	sites := []voronoi.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}
	res, err := regions.Synthesize(sites, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeCellsJSON(&buf, sites, res); err != nil {
		t.Fatal(err)
	}

	var doc cellsJSON
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Sites) != 3 || len(doc.Cells) != 3 || doc.Finite != 1 || len(doc.Vertices) != 7 {
		t.Errorf("doc = %+v", doc)
	}
	for _, c := range doc.Cells {
		if len(c.Indices) != len(c.Polygon) {
			t.Errorf("cell %d: %d indices, %d points", c.Site, len(c.Indices), len(c.Polygon))
		}
	}
}
