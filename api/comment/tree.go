package comment

// Node is a comment with its replies nested under it.
type Node struct {
	Item
	Replies []*Node `json:"replies"`
}

// BuildTree nests a flat ordered comment list by parent links.
// Comments with ParentID 0 become roots; every other comment is
// appended to its parent's replies in encounter order. A comment whose
// parent is not in the list is silently dropped.
func BuildTree(items []Item) []*Node {
	nodes := make(map[uint]*Node, len(items))
	for i := range items {
		nodes[items[i].ID] = &Node{Item: items[i], Replies: []*Node{}}
	}

	roots := []*Node{}
	for i := range items {
		node := nodes[items[i].ID]
		if items[i].ParentID == 0 {
			roots = append(roots, node)
		} else if parent, ok := nodes[items[i].ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}
	return roots
}

// Count returns the number of comments in the tree.
func Count(roots []*Node) int {
	total := 0
	for _, root := range roots {
		total += 1 + Count(root.Replies)
	}
	return total
}
