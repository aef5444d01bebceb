package entsent

// loadBaseLexicon loads the built-in sentiment words of a language
func (l *Lexicon) loadBaseLexicon(lang Language) {
	var base map[string]float64
	switch lang {
	case English:
		base = englishLexicon
	case Slovenian:
		base = slovenianLexicon
	case Spanish:
		base = spanishLexicon
	case French:
		base = frenchLexicon
	case German:
		base = germanLexicon
	default:
		return
	}
	for word, sentiment := range base {
		l.addEntry(lang, WordEntry{Word: word, Sentiment: sentiment, Domain: "base"})
	}
}

var englishLexicon = map[string]float64{
	// Strong positive words
	"excellent":   0.9,
	"amazing":     0.85,
	"wonderful":   0.85,
	"fantastic":   0.85,
	"outstanding": 0.9,
	"perfect":     0.95,
	"brilliant":   0.85,
	"superb":      0.85,

	// Moderate positive words
	"good":        0.6,
	"great":       0.75,
	"nice":        0.5,
	"love":        0.8,
	"happy":       0.7,
	"beautiful":   0.75,
	"enjoy":       0.65,
	"pleasant":    0.6,
	"positive":    0.6,
	"best":        0.85,
	"better":      0.5,
	"success":     0.7,
	"successful":  0.7,
	"win":         0.6,
	"praise":      0.7,
	"support":     0.4,
	"honest":      0.6,
	"awesome":     0.8,
	"interesting": 0.5,

	// Strong negative words
	"terrible":   -0.9,
	"awful":      -0.85,
	"horrible":   -0.85,
	"disgusting": -0.9,
	"dreadful":   -0.85,
	"abysmal":    -0.95,

	// Moderate negative words
	"bad":           -0.6,
	"hate":          -0.8,
	"sad":           -0.7,
	"ugly":          -0.75,
	"disappointing": -0.7,
	"poor":          -0.65,
	"wrong":         -0.6,
	"worst":         -0.85,
	"worse":         -0.5,
	"negative":      -0.6,
	"annoying":      -0.65,
	"boring":        -0.6,
	"fail":          -0.7,
	"failure":       -0.75,
	"corrupt":       -0.8,
	"scandal":       -0.7,
	"crisis":        -0.6,
	"criticism":     -0.5,
	"lie":           -0.7,
}

var slovenianLexicon = map[string]float64{
	// Positive words
	"dober":      0.6,
	"dobra":      0.6,
	"dobro":      0.6,
	"odličen":    0.9,
	"odlična":    0.9,
	"odlično":    0.9,
	"uspešen":    0.7,
	"uspešna":    0.7,
	"uspeh":      0.7,
	"zmaga":      0.6,
	"lep":        0.6,
	"lepa":       0.6,
	"pošten":     0.6,
	"veselje":    0.7,
	"pohvala":    0.7,
	"podpora":    0.4,
	"izjemen":    0.85,
	"čudovit":    0.85,

	// Negative words
	"slab":       -0.6,
	"slaba":      -0.6,
	"slabo":      -0.6,
	"grozen":     -0.85,
	"grozno":     -0.85,
	"neuspeh":    -0.7,
	"poraz":      -0.6,
	"kriza":      -0.6,
	"afera":      -0.7,
	"škandal":    -0.7,
	"korupcija":  -0.8,
	"laž":        -0.7,
	"kritika":    -0.5,
	"žalosten":   -0.7,
	"sovraštvo":  -0.8,
	"nesposoben": -0.7,
}

var spanishLexicon = map[string]float64{
	"excelente":     0.9,
	"maravilloso":   0.85,
	"fantástico":    0.85,
	"bueno":         0.6,
	"genial":        0.75,
	"feliz":         0.7,
	"mejor":         0.5,
	"terrible":      -0.9,
	"horrible":      -0.85,
	"malo":          -0.6,
	"triste":        -0.7,
	"decepcionante": -0.7,
	"peor":          -0.5,
}

var frenchLexicon = map[string]float64{
	"excellent":   0.9,
	"merveilleux": 0.85,
	"fantastique": 0.85,
	"bon":         0.6,
	"génial":      0.75,
	"heureux":     0.7,
	"meilleur":    0.5,
	"terrible":    -0.9,
	"horrible":    -0.85,
	"mauvais":     -0.6,
	"triste":      -0.7,
	"décevant":    -0.7,
	"pire":        -0.5,
}

var germanLexicon = map[string]float64{
	"ausgezeichnet": 0.9,
	"wunderbar":     0.85,
	"fantastisch":   0.85,
	"gut":           0.6,
	"großartig":     0.75,
	"glücklich":     0.7,
	"besser":        0.5,
	"schrecklich":   -0.9,
	"furchtbar":     -0.85,
	"schlecht":      -0.6,
	"traurig":       -0.7,
	"enttäuschend":  -0.7,
	"schlechter":    -0.5,
}
