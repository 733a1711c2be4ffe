package voronoi

import (
	"math"

	"go.uber.org/zap"
)

// beachSection - дуга параболы на пляжной линии
type beachSection struct {
	node        *rbtNode
	site        Vertex
	circleEvent *circleEvent
	edge        *edge
}

func (s *beachSection) bindToNode(node *rbtNode) {
	s.node = node
}

type beachSections []*beachSection

func (s *beachSections) appendLeft(b *beachSection) {
	*s = append(*s, nil)
	copy((*s)[1:], (*s)[:len(*s)-1])
	(*s)[0] = b
}

func (s *beachSections) appendRight(b *beachSection) {
	*s = append(*s, b)
}

// leftBreakPoint - X левой точки излома дуги при данной прямой сканирования
func leftBreakPoint(arc *beachSection, directrix float64) float64 {
	site := arc.site
	rfocx := site.X
	rfocy := site.Y
	pby2 := rfocy - directrix
	// фокус лежит на directrix - вырожденная парабола
	if pby2 == 0 {
		return rfocx
	}

	lArc := arc.node.previous
	if lArc == nil {
		return math.Inf(-1)
	}
	site = lArc.value.(*beachSection).site
	lfocx := site.X
	lfocy := site.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		return (-b+math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	// обе параболы на одинаковом расстоянии от directrix
	return (rfocx + lfocx) / 2
}

// rightBreakPoint - X правой точки излома (она же левая у следующей дуги)
func rightBreakPoint(arc *beachSection, directrix float64) float64 {
	if rArc := arc.node.next; rArc != nil {
		return leftBreakPoint(rArc.value.(*beachSection), directrix)
	}
	if arc.site.Y == directrix {
		return arc.site.X
	}
	return math.Inf(1)
}

func (v *Voronoi) detachBeachSection(arc *beachSection) {
	v.detachCircleEvent(arc)
	v.beachline.removeNode(arc.node)
}

// addBeachSection - событие точки: новая дуга разрезает пляжную линию
func (v *Voronoi) addBeachSection(site Vertex) {
	x := site.X
	directrix := site.Y

	// ищем дуги слева и справа от новой
	var lNode, rNode *rbtNode
	node := v.beachline.root
	for node != nil {
		arc := node.value.(*beachSection)
		dxl := leftBreakPoint(arc, directrix) - x
		if dxl > epsilon {
			node = node.left
			continue
		}
		dxr := x - rightBreakPoint(arc, directrix)
		if dxr > epsilon {
			if node.right == nil {
				lNode = node
				break
			}
			node = node.right
			continue
		}
		switch {
		case dxl > -epsilon: // ровно на левой точке излома
			lNode = node.previous
			rNode = node
		case dxr > -epsilon: // ровно на правой точке излома
			lNode = node
			rNode = node.next
		default: // посередине дуги
			lNode = node
			rNode = node
		}
		break
	}

	var lArc, rArc *beachSection
	if lNode != nil {
		lArc = lNode.value.(*beachSection)
	}
	if rNode != nil {
		rArc = rNode.value.(*beachSection)
	}

	newArc := &beachSection{site: site}
	if lArc == nil {
		v.beachline.insertSuccessor(nil, newArc)
	} else {
		v.beachline.insertSuccessor(lArc.node, newArc)
	}

	// первая дуга на линии
	if lArc == nil && rArc == nil {
		v.log.Debug("[v-add] Первая дуга", zap.Any("site", site))
		return
	}

	// новая дуга разрезает существующую на две
	if lArc == rArc {
		v.detachCircleEvent(lArc)

		rArc = &beachSection{site: lArc.site}
		v.beachline.insertSuccessor(newArc.node, rArc)

		newArc.edge = v.createEdge(v.cell(lArc.site), v.cell(newArc.site), noVertex, noVertex)
		rArc.edge = newArc.edge

		v.attachCircleEvent(lArc)
		v.attachCircleEvent(rArc)
		return
	}

	// новая дуга - последняя справа (все предыдущие сайты на той же высоте)
	if lArc != nil && rArc == nil {
		newArc.edge = v.createEdge(v.cell(lArc.site), v.cell(newArc.site), noVertex, noVertex)
		return
	}

	// новая дуга попала ровно между двумя дугами: появляется вершина
	v.detachCircleEvent(lArc)
	v.detachCircleEvent(rArc)

	lSite := lArc.site
	ax := lSite.X
	ay := lSite.Y
	bx := site.X - ax
	by := site.Y - ay
	rSite := rArc.site
	cx := rSite.X - ax
	cy := rSite.Y - ay
	d := 2 * (bx*cy - by*cx)
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	vertex := Vertex{X: (cy*hb-by*hc)/d + ax, Y: (bx*hc-cx*hb)/d + ay}

	lCell := v.cell(lSite)
	nCell := v.cell(site)
	rCell := v.cell(rSite)

	v.setEdgeStartpoint(rArc.edge, lCell, rCell, vertex)

	newArc.edge = v.createEdge(lCell, nCell, noVertex, vertex)
	rArc.edge = v.createEdge(nCell, rCell, noVertex, vertex)

	v.attachCircleEvent(lArc)
	v.attachCircleEvent(rArc)
}

// removeBeachSection - событие круга: дуга схлопывается в вершину
func (v *Voronoi) removeBeachSection(arc *beachSection) {
	circle := arc.circleEvent
	x := circle.x
	y := circle.ycenter
	vertex := Vertex{X: x, Y: y}
	previous := arc.node.previous
	next := arc.node.next
	disappearing := beachSections{arc}

	v.log.Debug("[v-remove] Вершина", zap.Float64("x", x), zap.Float64("y", y))

	v.detachBeachSection(arc)

	// в одной вершине могут сойтись больше трёх ячеек:
	// собираем все дуги, которые схлопываются в ту же точку
	lArc := previous.value.(*beachSection)
	for lArc.circleEvent != nil &&
		math.Abs(x-lArc.circleEvent.x) < epsilon &&
		math.Abs(y-lArc.circleEvent.ycenter) < epsilon {
		previous = lArc.node.previous
		disappearing.appendLeft(lArc)
		v.detachBeachSection(lArc)
		lArc = previous.value.(*beachSection)
	}
	disappearing.appendLeft(lArc)
	v.detachCircleEvent(lArc)

	rArc := next.value.(*beachSection)
	for rArc.circleEvent != nil &&
		math.Abs(x-rArc.circleEvent.x) < epsilon &&
		math.Abs(y-rArc.circleEvent.ycenter) < epsilon {
		next = rArc.node.next
		disappearing.appendRight(rArc)
		v.detachBeachSection(rArc)
		rArc = next.value.(*beachSection)
	}
	disappearing.appendRight(rArc)
	v.detachCircleEvent(rArc)

	// у всех исчезающих переходов вершина становится началом ребра
	nArcs := len(disappearing)
	for i := 1; i < nArcs; i++ {
		rArc = disappearing[i]
		lArc = disappearing[i-1]
		v.setEdgeStartpoint(rArc.edge, v.cell(lArc.site), v.cell(rArc.site), vertex)
	}

	// крайние дуги теперь соседи - рождается новое ребро
	lArc = disappearing[0]
	rArc = disappearing[nArcs-1]
	rArc.edge = v.createEdge(v.cell(lArc.site), v.cell(rArc.site), noVertex, vertex)

	v.attachCircleEvent(lArc)
	v.attachCircleEvent(rArc)
}
