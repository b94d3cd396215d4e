package path

// searchItem is one frontier entry. Implements queue.Priorizable.
type searchItem struct {
	name        string  // node name of this item in the graph
	distance    float64 // accumulated cost from the start node
	heuristic   float64 // estimated remaining cost to the goal, 0 for Dijkstra
	predecessor string  // node name of the predecessor, "" for the start
	index       int     // position in the heap, -1 while outside
}

func newSearchItem(name string, distance, heuristic float64, predecessor string) *searchItem {
	return &searchItem{name: name, distance: distance, heuristic: heuristic, predecessor: predecessor, index: -1}
}

func (item *searchItem) Priority() float64 { return item.distance + item.heuristic }
func (item *searchItem) Index() int        { return item.index }
func (item *searchItem) SetIndex(i int)    { item.index = i }
