package voronoi

// rbt - красно-чёрное дерево с двусвязным списком соседей (previous/next).
// Используется и для пляжной линии, и для очереди событий круга.
type rbt struct {
	root *rbtNode
}

type rbtValue interface {
	bindToNode(node *rbtNode)
}

type rbtNode struct {
	value    rbtValue
	left     *rbtNode
	right    *rbtNode
	parent   *rbtNode
	previous *rbtNode
	next     *rbtNode
	red      bool
}

// insertSuccessor вставляет value сразу после node (или первым, если node == nil)
func (t *rbt) insertSuccessor(node *rbtNode, value rbtValue) {
	successor := &rbtNode{value: value}
	value.bindToNode(successor)

	var parent *rbtNode
	switch {
	case node != nil:
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			node = t.first(node.right)
			node.left = successor
		} else {
			node.right = successor
		}
		parent = node
	case t.root != nil:
		node = t.first(t.root)
		successor.next = node
		node.previous = successor
		node.left = successor
		parent = node
	default:
		t.root = successor
	}
	successor.parent = parent
	successor.red = true

	// балансировка
	node = successor
	for parent != nil && parent.red {
		grandpa := parent.parent
		if parent == grandpa.left {
			uncle := grandpa.right
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := grandpa.left
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
}

func (t *rbt) removeNode(node *rbtNode) {
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	}
	node.next = nil
	node.previous = nil

	parent := node.parent
	left := node.left
	right := node.right

	var next *rbtNode
	switch {
	case left == nil:
		next = right
	case right == nil:
		next = left
	default:
		next = t.first(right)
	}

	if parent != nil {
		if parent.left == node {
			parent.left = next
		} else {
			parent.right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != nil && right != nil {
		isRed = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		isRed = node.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}
	if isRed {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}

	var sibling *rbtNode
	for node != t.root {
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if isRedNode(sibling.left) || isRedNode(sibling.right) {
				if !isRedNode(sibling.right) {
					sibling.left.red = false
					sibling.red = true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red = parent.red
				parent.red = false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if isRedNode(sibling.left) || isRedNode(sibling.right) {
				if !isRedNode(sibling.left) {
					sibling.right.red = false
					sibling.red = true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red = parent.red
				parent.red = false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func isRedNode(node *rbtNode) bool {
	return node != nil && node.red
}

func (t *rbt) rotateLeft(p *rbtNode) {
	q := p.right
	t.replaceChild(p, q)
	q.parent = p.parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *rbt) rotateRight(p *rbtNode) {
	q := p.left
	t.replaceChild(p, q)
	q.parent = p.parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

// replaceChild перевешивает q на место p у родителя p
func (t *rbt) replaceChild(p, q *rbtNode) {
	switch parent := p.parent; {
	case parent == nil:
		t.root = q
	case parent.left == p:
		parent.left = q
	default:
		parent.right = q
	}
}

func (t *rbt) first(node *rbtNode) *rbtNode {
	for node.left != nil {
		node = node.left
	}
	return node
}
