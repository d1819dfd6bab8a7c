package fonts

import (
	"log"
	"os"
	"sort"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSelector is used when a requested selector is unknown or empty.
const DefaultSelector = "print"

// family describes one font selector: the system fonts to try (in order)
// and the embedded TTF used when none of them can be found.
type family struct {
	// System lists candidate font file name fragments for findfont.Find.
	System []string

	// Embedded is TTF data from the Go font family, always parseable.
	Embedded []byte
}

// families is the closed selector table. Do not mutate at runtime.
var families = map[string]family{
	"print": {
		System:   []string{"Verdana.ttf", "Arial.ttf", "DejaVuSans.ttf"},
		Embedded: goregular.TTF,
	},
	"comic": {
		System:   []string{"Comic_Sans_MS.ttf", "ComicSansMS.ttf", "comic.ttf"},
		Embedded: goitalic.TTF,
	},
	"school": {
		System:   []string{"Century_Schoolbook.ttf", "Georgia.ttf", "DejaVuSerif.ttf"},
		Embedded: gobold.TTF,
	},
	"mono": {
		System:   []string{"DejaVuSansMono.ttf", "Courier_New.ttf", "cour.ttf"},
		Embedded: gomono.TTF,
	},
}

var (
	mu     sync.Mutex
	parsed = map[string]*truetype.Font{}
)

// Selectors returns the available font selector names in sorted order.
func Selectors() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Face returns a font face for the given selector at the given pixel size.
//
// Unknown selectors resolve to DefaultSelector. If font data cannot be
// parsed at all (which the embedded fallback should make impossible), a
// fixed 7x13 bitmap face is returned so rendering can still proceed.
func Face(selector string, sizePx float64) font.Face {
	f := load(selector)
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    sizePx,
		DPI:     72, // at 72 DPI, point size == pixel size
		Hinting: font.HintingFull,
	})
}

// load returns the parsed font for a selector, consulting the cache first.
func load(selector string) *truetype.Font {
	fam, ok := families[selector]
	if !ok {
		selector = DefaultSelector
		fam = families[selector]
	}

	mu.Lock()
	defer mu.Unlock()
	if f, ok := parsed[selector]; ok {
		return f
	}

	f := parseFamily(selector, fam)
	parsed[selector] = f
	return f
}

// parseFamily tries each system candidate, then the embedded fallback.
func parseFamily(selector string, fam family) *truetype.Font {
	for _, name := range fam.System {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			if os.Getenv("DREAM_COLOR_LOG_LEVEL") == "debug" {
				log.Printf("font %q: unparseable system font %s: %v", selector, path, err)
			}
			continue
		}
		return f
	}

	f, err := truetype.Parse(fam.Embedded)
	if err != nil {
		log.Printf("font %q: embedded fallback unparseable: %v", selector, err)
		return nil
	}
	return f
}
