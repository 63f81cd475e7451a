package badbets

import (
	"container/heap"
	"iter"
	"slices"
)

// betQueue is a min-heap of bets on settlement date: the bet that settles
// first is always at the top. It also indexes bets by id, so that a bet can be
// removed by handle without scanning.
//
// The zero value is an empty queue.
type betQueue struct {
	bets []Bet
	pos  map[string]int // bet id -> index in bets
}

// heap.Interface, not to be called directly.

func (q *betQueue) Len() int           { return len(q.bets) }
func (q *betQueue) Less(i, j int) bool { return Compare(q.bets[i], q.bets[j]) < 0 }
func (q *betQueue) Swap(i, j int) {
	q.bets[i], q.bets[j] = q.bets[j], q.bets[i]
	q.pos[q.bets[i].ID] = i
	q.pos[q.bets[j].ID] = j
}
func (q *betQueue) Push(x any) {
	b := x.(Bet)
	if q.pos == nil {
		q.pos = make(map[string]int)
	}
	q.pos[b.ID] = len(q.bets)
	q.bets = append(q.bets, b)
}
func (q *betQueue) Pop() any {
	last := len(q.bets) - 1
	b := q.bets[last]
	q.bets[last] = Bet{}
	q.bets = q.bets[:last]
	delete(q.pos, b.ID)
	return b
}

// insert adds b in O(log n).
func (q *betQueue) insert(b Bet) { heap.Push(q, b) }

// peek returns the earliest settling bet without removing it.
func (q *betQueue) peek() (Bet, bool) {
	if len(q.bets) == 0 {
		return Bet{}, false
	}
	return q.bets[0], true
}

// pop removes and returns the earliest settling bet in O(log n).
func (q *betQueue) pop() (Bet, bool) {
	if len(q.bets) == 0 {
		return Bet{}, false
	}
	return heap.Pop(q).(Bet), true
}

// get returns the bet with that id.
func (q *betQueue) get(id string) (Bet, bool) {
	i, ok := q.pos[id]
	if !ok {
		return Bet{}, false
	}
	return q.bets[i], true
}

// remove removes the bet with that id in O(log n).
func (q *betQueue) remove(id string) (Bet, bool) {
	i, ok := q.pos[id]
	if !ok {
		return Bet{}, false
	}
	return heap.Remove(q, i).(Bet), true
}

// ascend iterates over the bets in settlement order for as long as keep
// accepts them. keep must be monotone: once it rejects a bet it rejects every
// bet settling later.
//
// The queue is not modified. A frontier of heap positions is expanded only
// below accepted bets, so k accepted bets cost O(k log k) whatever the size of
// the queue.
func (q *betQueue) ascend(keep func(Bet) bool) iter.Seq[Bet] {
	return func(yield func(Bet) bool) {
		if len(q.bets) == 0 {
			return
		}
		frontier := &nodeHeap{q: q, nodes: []int{0}}
		for frontier.Len() > 0 {
			i := heap.Pop(frontier).(int)
			b := q.bets[i]
			if !keep(b) || !yield(b) {
				return
			}
			for _, child := range [2]int{2*i + 1, 2*i + 2} {
				if child < len(q.bets) {
					heap.Push(frontier, child)
				}
			}
		}
	}
}

// nodeHeap is a min-heap of positions in a betQueue, ordered like the bets
// they point to.
type nodeHeap struct {
	q     *betQueue
	nodes []int
}

func (h *nodeHeap) Len() int           { return len(h.nodes) }
func (h *nodeHeap) Less(i, j int) bool { return h.q.Less(h.nodes[i], h.nodes[j]) }
func (h *nodeHeap) Swap(i, j int)      { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }
func (h *nodeHeap) Push(x any)         { h.nodes = append(h.nodes, x.(int)) }
func (h *nodeHeap) Pop() any {
	last := len(h.nodes) - 1
	i := h.nodes[last]
	h.nodes = h.nodes[:last]
	return i
}

// sorted iterates over the bets in settlement order. Bets settling on the same
// day keep no particular order.
func (q *betQueue) sorted() iter.Seq[Bet] {
	bets := slices.Clone(q.bets)
	slices.SortStableFunc(bets, Compare)
	return slices.Values(bets)
}
