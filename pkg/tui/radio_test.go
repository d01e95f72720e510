package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/blogpanel/blogpanel/pkg/models"
	"github.com/blogpanel/blogpanel/pkg/tui/testhelpers"
)

func TestRadioGroup(t *testing.T) {
	sizes := testhelpers.Catalog().FontSizes

	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		want   models.Option
		events int
	}{
		{
			name:   "right picks next",
			keys:   []tea.KeyMsg{testhelpers.Key(tea.KeyRight)},
			want:   sizes[1],
			events: 1,
		},
		{
			name:   "l and h",
			keys:   []tea.KeyMsg{testhelpers.Runes("l"), testhelpers.Runes("l"), testhelpers.Runes("h")},
			want:   sizes[1],
			events: 3,
		},
		{
			name:   "left at first option",
			keys:   []tea.KeyMsg{testhelpers.Key(tea.KeyLeft)},
			want:   sizes[0],
			events: 0,
		},
		{
			name:   "right past the end",
			keys:   []tea.KeyMsg{testhelpers.Key(tea.KeyRight), testhelpers.Key(tea.KeyRight), testhelpers.Key(tea.KeyRight)},
			want:   sizes[2],
			events: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var picked []models.Option
			r := NewRadioGroup(RadioConfig{
				ID:       "size",
				Title:    "Font size",
				Options:  sizes,
				Selected: sizes[0],
				OnChange: func(o models.Option) { picked = append(picked, o) },
			})
			r.Focus()
			for _, k := range tt.keys {
				r.Update(k)
			}
			assert.Equal(t, tt.want, r.Selected())
			assert.Len(t, picked, tt.events)
		})
	}
}

func TestRadioGroup_IgnoresKeysWithoutFocus(t *testing.T) {
	sizes := testhelpers.Catalog().FontSizes
	r := NewRadioGroup(RadioConfig{ID: "size", Options: sizes, Selected: sizes[0]})

	handled, _ := r.Update(testhelpers.Key(tea.KeyRight))
	assert.False(t, handled)
	assert.Equal(t, sizes[0], r.Selected())
	assert.False(t, r.Capturing())
}

func TestRadioGroup_Click(t *testing.T) {
	sizes := testhelpers.Catalog().FontSizes
	regions := testhelpers.NewFakeRegions()
	regions.Place("size-option-2", 20, 5, 28, 5)

	var picked []models.Option
	r := NewRadioGroup(RadioConfig{
		ID:       "size",
		Options:  sizes,
		Selected: sizes[0],
		OnChange: func(o models.Option) { picked = append(picked, o) },
		Regions:  regions,
	})

	handled, _ := r.Update(testhelpers.Release(20, 5))
	assert.False(t, handled)

	handled, _ = r.Update(regions.ClickIn("size-option-2"))
	assert.True(t, handled)
	assert.Equal(t, []models.Option{sizes[2]}, picked)

	handled, _ = r.Update(testhelpers.Press(0, 0))
	assert.False(t, handled)
}

func TestRadioGroup_View(t *testing.T) {
	sizes := testhelpers.Catalog().FontSizes
	regions := testhelpers.NewFakeRegions()
	r := NewRadioGroup(RadioConfig{ID: "size", Title: "Font size", Options: sizes, Selected: sizes[1], Regions: regions})

	view := r.View()
	assert.Contains(t, view, "Font size")
	assert.Contains(t, view, "(•) 25px")
	assert.Contains(t, view, "( ) 18px")
	for i := range sizes {
		assert.True(t, regions.Marked(r.optionID(i)))
	}
}
