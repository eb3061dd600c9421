package gobf

// Node is one element of a parsed program: either a command leaf, or a loop
// owning an ordered body of child nodes. A node is a leaf exactly when Cmd
// is nonzero; a loop's Cmd is zero and its Body holds the loop's nodes in
// source order. Loop bodies nest without limit and without sharing: each
// loop exclusively owns its body.
type Node struct {
	Cmd  Command
	Body []Node
}

// Leaf makes a command leaf node.
func Leaf(cmd Command) Node { return Node{Cmd: cmd} }

// Loop makes a loop node owning the given body.
func Loop(body ...Node) Node { return Node{Body: body} }

// IsLoop reports whether n is a loop node rather than a command leaf.
func (n Node) IsLoop() bool { return n.Cmd == 0 }

// Count tallies command leaves and loop nodes across prog, descending into
// nested loop bodies. The loop count equals the number of matched bracket
// pairs in the source that prog was parsed from.
func Count(prog []Node) (commands, loops int) {
	pending := [][]Node{prog}
	for len(pending) > 0 {
		nodes := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, n := range nodes {
			if n.IsLoop() {
				loops++
				pending = append(pending, n.Body)
			} else {
				commands++
			}
		}
	}
	return commands, loops
}
