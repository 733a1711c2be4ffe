package voronoi

import (
	"sort"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/logger"
	"go.uber.org/zap"
)

const epsilon = 1e-9

// Voronoi - состояние алгоритма Форчуна на время одного вызова Compute
type Voronoi struct {
	// ячейки диаграммы Вороного
	cells []*cell
	// рёбра диаграммы Вороного в порядке создания
	edges []*edge

	// быстрый доступ к ячейке по координатам сайта
	cellsMap map[Vertex]*cell

	// пляжная линия
	beachline rbt
	// события круга
	circleEvents rbt
	// ближайшее событие круга
	firstCircleEvent *circleEvent

	log *logger.ZapLogger
}

// Compute строит диаграмму Вороного для sites и возвращает её в сыром виде:
// конечные вершины, регионы сайтов и рёбра (ridges), в том числе бесконечные.
//
// Ошибки DEGENERATE_INPUT: меньше 3 сайтов, совпадающие или нечисловые
// координаты, все сайты на одной прямой.
func Compute(sites []Vertex, log *logger.ZapLogger) (diagram *RawDiagram, err error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := validateSites(sites); err != nil {
		return nil, err
	}

	v := &Voronoi{
		cellsMap: make(map[Vertex]*cell, len(sites)),
		log:      log,
	}

	// нарушение инварианта внутри развёртки всплывает как ошибка, а не паника
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(*apperrors.Error)
			if !ok {
				panic(r)
			}
			diagram, err = nil, fault
		}
	}()

	v.sweep(sites)

	return v.export(len(sites))
}

func (v *Voronoi) sweep(sites []Vertex) {
	v.log.Debug("[v] Алгоритм Форчуна запущен", zap.Int("sites", len(sites)))

	queue := make(siteQueue, len(sites))
	for i, site := range sites {
		queue[i] = siteEvent{index: i, site: site}
	}
	sort.Sort(queue)

	pop := func() *siteEvent {
		if len(queue) == 0 {
			return nil
		}
		ev := queue[0]
		queue = queue[1:]
		return &ev
	}

	ev := pop()
	var prev Vertex
	havePrev := false

	for {
		circle := v.firstCircleEvent

		// событие точки идёт раньше события круга
		if ev != nil && (circle == nil || ev.site.Y < circle.y || (ev.site.Y == circle.y && ev.site.X < circle.x)) {
			if !havePrev || ev.site != prev {
				c := &cell{index: ev.index, site: ev.site}
				v.cells = append(v.cells, c)
				v.cellsMap[ev.site] = c
				v.addBeachSection(ev.site)
				prev = ev.site
				havePrev = true
			} else {
				v.log.Error("[v-site] Найден дубликат!", zap.Any("site", ev.site))
			}
			ev = pop()
		} else if circle != nil {
			v.removeBeachSection(circle.arc)
		} else {
			break
		}
	}

	v.log.Debug("[v] Алгоритм завершен", zap.Int("edges", len(v.edges)))
}

func (v *Voronoi) cell(site Vertex) *cell {
	c := v.cellsMap[site]
	if c == nil {
		panic(apperrors.New(apperrors.ErrCodeInvariantViolation, "no cell for site %v", site))
	}
	return c
}

func (v *Voronoi) createEdge(lCell, rCell *cell, va, vb Vertex) *edge {
	e := newEdge(lCell, rCell)
	v.edges = append(v.edges, e)
	if va != noVertex {
		v.setEdgeStartpoint(e, lCell, rCell, va)
	}
	if vb != noVertex {
		v.setEdgeEndpoint(e, lCell, rCell, vb)
	}
	return e
}

func (v *Voronoi) setEdgeStartpoint(e *edge, lCell, rCell *cell, vertex Vertex) {
	switch {
	case e.va == noVertex && e.vb == noVertex:
		e.va = vertex
		e.lCell = lCell
		e.rCell = rCell
	case e.lCell == rCell:
		e.vb = vertex
	default:
		e.va = vertex
	}
}

func (v *Voronoi) setEdgeEndpoint(e *edge, lCell, rCell *cell, vertex Vertex) {
	v.setEdgeStartpoint(e, rCell, lCell, vertex)
}
