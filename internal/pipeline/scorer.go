package pipeline

import "golang.org/x/net/html"

// blockTags are the elements whose Valuate() result is accumulated into
// their parent's running score. Images contribute separately below, scored
// directly rather than valuated.
var blockTags = []string{"p", "li", "dd", "dt", "figure"}

// ScoreMap accumulates Triple scores keyed by parent node, preserving first-
// seen order so that later tie-breaking (in SelectContainer) is
// deterministic rather than dependent on Go's randomized map iteration.
type ScoreMap struct {
	order  []*html.Node
	values map[*html.Node]Triple
}

func newScoreMap() *ScoreMap {
	return &ScoreMap{values: make(map[*html.Node]Triple)}
}

func (s *ScoreMap) add(n *html.Node, t Triple) {
	if _, ok := s.values[n]; !ok {
		s.order = append(s.order, n)
	}
	s.values[n] = sumTriple(s.values[n], t)
}

// ScoreBlocks walks body for every block-level content tag and every image,
// accumulating a Triple per parent: block tags contribute their own
// Valuate() result, and positively-scored images contribute a (score, 1, 1)
// triple of their own.
func ScoreBlocks(body *html.Node) *ScoreMap {
	scores := newScoreMap()

	for _, tag := range blockTags {
		for _, p := range IterTag(body, tag) {
			parent := p.Parent
			if parent == nil {
				continue
			}
			scores.add(parent, Valuate(p))
		}
	}

	for _, img := range IterTag(body, "img") {
		v := Categorise(img)
		if v <= 0 {
			continue
		}
		parent := img.Parent
		if parent == nil {
			continue
		}
		scores.add(parent, Triple{Length: v, Words: 1, Clutter: 1})
	}

	return scores
}
