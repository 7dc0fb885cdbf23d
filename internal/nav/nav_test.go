package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pageLayout() LayoutMap {
	return LayoutMap{
		"hero":         {Top: 0, Height: 800},
		"about":        {Top: 800, Height: 900},
		"skills":       {Top: 1700, Height: 600},
		"projects":     {Top: 2300, Height: 1200},
		"certificates": {Top: 3500, Height: 700},
		"talks":        {Top: 4200, Height: 800},
		"contact":      {Top: 5000, Height: 700},
	}
}

func TestTrackerStartsOnFirstSection(t *testing.T) {
	assert.Equal(t, "hero", NewTracker().Active())
	assert.Equal(t, "b", NewTracker("b", "c").Active())
}

func TestTrackerUpdate(t *testing.T) {
	tests := []struct {
		scrollY float64
		want    string
	}{
		{0, "hero"},
		{699, "hero"},
		{700, "about"}, // probe lands exactly on the top edge
		{1599, "about"},
		{1600, "skills"},
		{2250, "projects"},
		{4899, "talks"},
		{4900, "contact"},
	}

	for _, tt := range tests {
		tr := NewTracker()
		assert.Equal(t, tt.want, tr.Update(tt.scrollY, pageLayout()), "scrollY=%v", tt.scrollY)
	}
}

func TestTrackerKeepsPreviousWhenNothingMatches(t *testing.T) {
	tr := NewTracker()
	layout := pageLayout()

	assert.Equal(t, "talks", tr.Update(4500, layout))
	// past the bottom of the last section
	assert.Equal(t, "talks", tr.Update(9000, layout))

	// a layout whose first section starts below the probe
	gap := LayoutMap{"hero": {Top: 500, Height: 100}}
	assert.Equal(t, "talks", tr.Update(0, gap))
}

func TestTrackerFirstMatchWinsOnOverlap(t *testing.T) {
	layout := LayoutMap{
		"hero":  {Top: 0, Height: 500},
		"about": {Top: 200, Height: 500},
	}
	tr := NewTracker()
	assert.Equal(t, "hero", tr.Update(250, layout))
	assert.Equal(t, "about", tr.Update(450, layout))
}

func TestTrackerSkipsMissingSections(t *testing.T) {
	layout := pageLayout()
	delete(layout, "skills")

	tr := NewTracker()
	assert.Equal(t, "about", tr.Update(1000, layout))
	assert.Equal(t, "about", tr.Update(1650, layout))
	assert.Equal(t, "projects", tr.Update(2300, layout))
}

func TestTrackerSelectsExactlyOne(t *testing.T) {
	tr := NewTracker()
	layout := pageLayout()
	for y := 0.0; y < 6000; y += 37 {
		tr.Update(y, layout)
		active := 0
		for _, item := range tr.Items() {
			if item.Active {
				active++
			}
		}
		assert.Equal(t, 1, active, "scrollY=%v", y)
	}
}

func TestScrolled(t *testing.T) {
	assert.False(t, Scrolled(0))
	assert.False(t, Scrolled(50))
	assert.True(t, Scrolled(51))
}

func TestItems(t *testing.T) {
	items := NewTracker().Items()
	assert.Len(t, items, len(Sections))
	assert.Equal(t, Item{ID: "hero", Label: "Home", Href: "#hero", Active: true}, items[0])
	assert.Equal(t, "#contact", items[6].Href)
	assert.False(t, items[6].Active)
}
