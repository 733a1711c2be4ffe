package main

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

// Генерируем случайные точки для станций. Координаты целые, поэтому
// повторы отбрасываем, иначе диаграмма не построится.
func generateRandStations(rng *rand.Rand, n int, width, height int) []voronoi.Vertex {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	if limit := width * height; n > limit {
		n = limit
	}
	stations := make([]voronoi.Vertex, 0, n)
	seen := make(map[voronoi.Vertex]bool, n)
	for len(stations) < n {
		p := voronoi.Vertex{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		stations = append(stations, p)
	}
	return stations
}

func generateFixStations(n int, width, height int) []voronoi.Vertex {
	if n <= 0 {
		return nil
	}
	stations := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть, например, на 20 станций, а мы 16-17 генерим
			if len(stations) == n {
				return stations
			}
			stations = append(stations, voronoi.Vertex{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}

	return stations
}
