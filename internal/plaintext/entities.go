package plaintext

// namedEntities is a deliberately partial subset of the HTML5 named
// character reference table — the common punctuation, whitespace, and Latin
// accented letters articles actually use, not the full ~2000-entry table.
// golang.org/x/net/html's own Tokenizer unescapes entities silently on its
// parsed Token() path with no way to observe a miss, and no third-party
// library in this module's dependency set exposes a decoder that reports
// failures, so this table (and the miss-counting decoder built on it in
// linearizer.go) is hand-rolled. An unrecognised name simply counts toward
// the errors budget below rather than failing the whole linearization.
var namedEntities = map[string]rune{
	"amp":    '&',
	"lt":     '<',
	"gt":     '>',
	"quot":   '"',
	"apos":   '\'',
	"nbsp":   ' ',
	"copy":   '©',
	"reg":    '®',
	"trade":  '™',
	"mdash":  '—',
	"ndash":  '–',
	"hellip": '…',
	"lsquo":  '‘',
	"rsquo":  '’',
	"ldquo":  '“',
	"rdquo":  '”',
	"laquo":  '«',
	"raquo":  '»',
	"middot": '·',
	"bull":   '•',
	"dagger": '†',
	"deg":    '°',
	"sect":   '§',
	"para":   '¶',
	"eacute": 'é',
	"egrave": 'è',
	"agrave": 'à',
	"ccedil": 'ç',
	"uuml":   'ü',
	"ouml":   'ö',
	"auml":   'ä',
	"euro":   '€',
	"pound":  '£',
	"yen":    '¥',
	"cent":   '¢',
	"shy":    '­',
	"times":  '×',
	"divide": '÷',
	"plusmn": '±',
	"frac12": '½',
	"frac14": '¼',
	"frac34": '¾',
	"sup1":   '¹',
	"sup2":   '²',
	"sup3":   '³',
}
