package pipeline

import (
	"sort"

	"golang.org/x/net/html"
)

type scoredParent struct {
	parent *html.Node
	rank   int
}

type pathInfo struct {
	node    *html.Node
	count   int
	nesting int
}

// SelectContainer picks the element most likely to be the article's
// container. It ranks scored parents, keeps every parent within a weighing
// factor of the leader (4x for list containers, 2x otherwise), then has each
// retained parent cast a vote for every ancestor on its path up to the
// document root, tracking how deep each ancestor sits when it's visited.
// Among the ancestors holding at least half of the top vote count, the one
// with the fewest votes (ties going to the smallest nesting) becomes the
// container, moving past one that holds exactly half. When no ancestor is
// visited more than once, the last retained parent itself is the container,
// at nesting 1. An <article> ancestor takes precedence over both when its
// valuated length exceeds four times that of the last retained parent.
//
// The comparison against `article` below intentionally reads the last
// parent visited by the retained-parents loop, not the overall leader: this
// mirrors the loop-variable reuse in the original algorithm this pipeline is
// ported from, and is preserved rather than "fixed".
func SelectContainer(scores *ScoreMap) (top *html.Node, nesting int, ok bool) {
	if len(scores.order) == 0 {
		return nil, 0, false
	}

	toplist := make([]scoredParent, 0, len(scores.order))
	for _, p := range scores.order {
		toplist = append(toplist, scoredParent{parent: p, rank: getVal(scores.values[p])})
	}
	sort.SliceStable(toplist, func(i, j int) bool { return toplist[i].rank > toplist[j].rank })

	leader := toplist[0]
	weighing := 2
	switch Tag(leader.parent) {
	case "dl", "ol", "ul":
		weighing = 4
	}

	var retained []scoredParent
	for _, e := range toplist {
		if weighing*e.rank >= leader.rank {
			retained = append(retained, e)
		}
	}

	paths := make(map[*html.Node]*pathInfo)
	var order []*html.Node
	var article *html.Node
	var articleNesting int
	var lastRetainedTop *html.Node

	for _, e := range retained {
		lastRetainedTop = e.parent
		node := e.parent.Parent
		nest := 2
		for node != nil {
			if Tag(node) == "article" {
				article = node
				articleNesting = nest
			}
			info, exists := paths[node]
			if !exists {
				info = &pathInfo{node: node}
				paths[node] = info
				order = append(order, node)
			}
			info.count++
			if nest > info.nesting {
				info.nesting = nest
			}
			node = node.Parent
			nest++
		}
	}

	if len(order) == 0 {
		return nil, 0, false
	}

	pathlist := make([]*pathInfo, len(order))
	for i, n := range order {
		pathlist[i] = paths[n]
	}
	sort.SliceStable(pathlist, func(i, j int) bool {
		if pathlist[i].count != pathlist[j].count {
			return pathlist[i].count < pathlist[j].count
		}
		return pathlist[i].nesting < pathlist[j].nesting
	})
	maxp := pathlist[len(pathlist)-1].count

	if article != nil && 4*Valuate(lastRetainedTop).Length < Valuate(article).Length {
		return article, articleNesting, true
	}

	if maxp > 1 {
		threshold := (maxp + 1) / 2
		var filtered []*pathInfo
		for _, pi := range pathlist {
			if pi.count >= threshold {
				filtered = append(filtered, pi)
			}
		}
		chosen := filtered[0]
		top, nesting = chosen.node, chosen.nesting
		if chosen.count == maxp/2 {
			for _, pi := range filtered[1:] {
				if pi.count != chosen.count {
					top, nesting = pi.node, pi.nesting
					break
				}
			}
		}
	} else {
		top = lastRetainedTop
		nesting = 1
	}

	return top, nesting, true
}
