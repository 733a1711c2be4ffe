package voronoi

import "math"

// circleEvent - момент, когда дуга arc схлопнется.
// (x, ycenter) - центр окружности (будущая вершина), y - её нижняя точка.
type circleEvent struct {
	node    *rbtNode
	site    Vertex
	arc     *beachSection
	x       float64
	y       float64
	ycenter float64
}

func (e *circleEvent) bindToNode(node *rbtNode) {
	e.node = node
}

func (v *Voronoi) attachCircleEvent(arc *beachSection) {
	lArc := arc.node.previous
	rArc := arc.node.next
	if lArc == nil || rArc == nil {
		return
	}
	lSite := lArc.value.(*beachSection).site
	cSite := arc.site
	rSite := rArc.value.(*beachSection).site

	// дуги одного сайта по краям не сходятся
	if lSite == rSite {
		return
	}

	// описанная окружность трёх сайтов, начало координат в cSite
	bx := cSite.X
	by := cSite.Y
	ax := lSite.X - bx
	ay := lSite.Y - by
	cx := rSite.X - bx
	cy := rSite.Y - by

	// обход l->c->r по часовой стрелке: дуга не схлопывается
	d := 2 * (ax*cy - ay*cx)
	if d >= -2e-12 {
		return
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d
	ycenter := y + by

	event := &circleEvent{
		arc:     arc,
		site:    cSite,
		x:       x + bx,
		y:       ycenter + math.Sqrt(x*x+y*y),
		ycenter: ycenter,
	}
	arc.circleEvent = event

	// события упорядочены по (y, x)
	var predecessor *rbtNode
	node := v.circleEvents.root
	for node != nil {
		other := node.value.(*circleEvent)
		if event.y < other.y || (event.y == other.y && event.x <= other.x) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}
	v.circleEvents.insertSuccessor(predecessor, event)
	if predecessor == nil {
		v.firstCircleEvent = event
	}
}

func (v *Voronoi) detachCircleEvent(arc *beachSection) {
	event := arc.circleEvent
	if event == nil {
		return
	}
	if event.node.previous == nil {
		if event.node.next != nil {
			v.firstCircleEvent = event.node.next.value.(*circleEvent)
		} else {
			v.firstCircleEvent = nil
		}
	}
	v.circleEvents.removeNode(event.node)
	arc.circleEvent = nil
}
