package pipeline

import (
	"github.com/pmezard/go-difflib/difflib"
)

// diffClassify walks the line-level diff between two structural summaries
// and reproduces the running counters a Python difflib.Differ().compare()
// consumer would see: clines counts common lines, dlines counts everything
// else (the +/- lines Differ emits for a changed region), and maxclines is
// the high-water mark of clines reached while clines is still >= dlines —
// the running "this still looks like largely the same content" signal the
// paywall-duplicate detector thresholds against.
func diffClassify(prevLines, curLines []string) (clines, dlines, maxclines int) {
	matcher := difflib.NewMatcher(prevLines, curLines)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for i := 0; i < op.I2-op.I1; i++ {
				clines++
				if clines >= dlines && clines > maxclines {
					maxclines = clines
				}
			}
		case 'd':
			for i := 0; i < op.I2-op.I1; i++ {
				dlines++
				if clines >= dlines && clines > maxclines {
					maxclines = clines
				}
			}
		case 'i':
			for j := 0; j < op.J2-op.J1; j++ {
				dlines++
				if clines >= dlines && clines > maxclines {
					maxclines = clines
				}
			}
		case 'r':
			// Differ emits the deleted lines first, then the inserted ones.
			for i := 0; i < op.I2-op.I1; i++ {
				dlines++
				if clines >= dlines && clines > maxclines {
					maxclines = clines
				}
			}
			for j := 0; j < op.J2-op.J1; j++ {
				dlines++
				if clines >= dlines && clines > maxclines {
					maxclines = clines
				}
			}
		}
	}
	return clines, dlines, maxclines
}

func summaryLines(entries []SummaryEntry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.key()
	}
	return lines
}
