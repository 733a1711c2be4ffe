package voronoi

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex - точка на плоскости (сайт или вершина диаграммы).
type Vertex = r2.Vec

// noVertex - конец ребра, который ещё не найден или уходит в бесконечность
var noVertex = Vertex{X: math.Inf(1), Y: math.Inf(1)}

// cell - ячейка одного сайта; index - позиция сайта во входном слайсе
type cell struct {
	index int
	site  Vertex
}

// edge - ребро (ridge) между двумя соседними ячейками.
// va/vb остаются noVertex, пока соответствующий конец не определён.
type edge struct {
	lCell *cell
	rCell *cell
	va    Vertex
	vb    Vertex
}

func newEdge(lCell, rCell *cell) *edge {
	return &edge{
		lCell: lCell,
		rCell: rCell,
		va:    noVertex,
		vb:    noVertex,
	}
}

type siteEvent struct {
	index int
	site  Vertex
}

// очередь событий точек: сверху вниз (по Y), при равенстве слева направо
type siteQueue []siteEvent

func (q siteQueue) Len() int      { return len(q) }
func (q siteQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q siteQueue) Less(i, j int) bool {
	if q[i].site.Y != q[j].site.Y {
		return q[i].site.Y < q[j].site.Y
	}
	return q[i].site.X < q[j].site.X
}
