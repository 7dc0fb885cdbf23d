// Package nav decides which page section the navigation bar highlights.
package nav

// Section ids in top-to-bottom page order.
var Sections = []string{"hero", "about", "skills", "projects", "certificates", "talks", "contact"}

// Labels are the navigation captions for each section id.
var Labels = map[string]string{
	"hero":         "Home",
	"about":        "About",
	"skills":       "Skills",
	"projects":     "Projects",
	"certificates": "Certificates",
	"talks":        "Talks",
	"contact":      "Contact",
}

const (
	// ProbeOffset is added to the scroll offset before testing section bounds.
	ProbeOffset = 100
	// ScrolledThreshold is the offset past which the bar switches to its solid style.
	ScrolledThreshold = 50
)

// Bounds is the vertical extent of one section in page coordinates.
type Bounds struct {
	Top    float64
	Height float64
}

func (b Bounds) contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout reports where each section sits. ok is false when the section is
// not on the page.
type Layout interface {
	Bounds(id string) (b Bounds, ok bool)
}

// LayoutMap is a Layout backed by a map.
type LayoutMap map[string]Bounds

func (m LayoutMap) Bounds(id string) (Bounds, bool) {
	b, ok := m[id]
	return b, ok
}

// Tracker holds the active section between scroll events.
type Tracker struct {
	sections []string
	active   string
}

// NewTracker tracks sections in the given order, or Sections when none are
// given. The first section starts active.
func NewTracker(sections ...string) *Tracker {
	if len(sections) == 0 {
		sections = Sections
	}
	return &Tracker{sections: sections, active: sections[0]}
}

// Active returns the currently highlighted section id.
func (t *Tracker) Active() string {
	return t.active
}

// Update re-evaluates the active section for scrollY. The first section, in
// order, whose bounds contain scrollY+ProbeOffset wins; when none does the
// previous value is kept.
func (t *Tracker) Update(scrollY float64, layout Layout) string {
	probe := scrollY + ProbeOffset
	for _, id := range t.sections {
		b, ok := layout.Bounds(id)
		if !ok {
			continue
		}
		if b.contains(probe) {
			t.active = id
			break
		}
	}
	return t.active
}

// Scrolled reports whether the page has moved far enough for the solid
// navigation style.
func Scrolled(scrollY float64) bool {
	return scrollY > ScrolledThreshold
}

// Item is one rendered navigation entry.
type Item struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// Items returns the navigation entries with the tracker's active section
// marked.
func (t *Tracker) Items() []Item {
	items := make([]Item, 0, len(t.sections))
	for _, id := range t.sections {
		label, ok := Labels[id]
		if !ok {
			label = id
		}
		items = append(items, Item{ID: id, Label: label, Href: "#" + id, Active: id == t.active})
	}
	return items
}
