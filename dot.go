package bintrie

import "fmt"

// ToDot renders root as a Graphviz DOT graph, for ad-hoc debugging. It is
// grounded on the teacher's StatelessNode.toDot walk, generalized to the
// five-variant node algebra; a full DOT *exporter* is explicitly out of
// scope for the core (spec §1), so this stays a debug aid rather than a
// CLI-facing exporter.
func ToDot(root Node) string {
	return "digraph bintrie {\n" + dotNode(root, "", "root") + "}\n"
}

func dotNode(n Node, parent, path string) string {
	me := "n" + path
	switch v := n.(type) {
	case *InternalNode:
		out := fmt.Sprintf("%s [label=\"internal\"]\n", me)
		if parent != "" {
			out += fmt.Sprintf("%s -> %s\n", parent, me)
		}
		out += dotNode(v.Left, me, path+"0")
		out += dotNode(v.Right, me, path+"1")
		return out
	case *StemNode:
		out := fmt.Sprintf("%s [label=\"stem %s\"]\n", me, v.Stem.String())
		if parent != "" {
			out += fmt.Sprintf("%s -> %s\n", parent, me)
		}
		for i, child := range v.Children {
			if child == NullLeaf {
				continue
			}
			out += dotNode(child, me, fmt.Sprintf("%s_%d", path, i))
		}
		return out
	case *LeafNode:
		label := "leaf (empty)"
		if v.hasValue {
			label = fmt.Sprintf("leaf %x", v.Value)
		}
		out := fmt.Sprintf("%s [label=%q]\n", me, label)
		if parent != "" {
			out += fmt.Sprintf("%s -> %s\n", parent, me)
		}
		return out
	default: // nullBranchNode, nullLeafNode
		return ""
	}
}
