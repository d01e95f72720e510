package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogpanel/blogpanel/internal/logging"
	"github.com/blogpanel/blogpanel/pkg/models"
	"github.com/blogpanel/blogpanel/pkg/tui/testhelpers"
)

type panelRecorder struct {
	submitted []models.ArticleState
	reset     []models.ArticleState
}

func newTestPanel(t *testing.T, regions Regions) (*SettingsPanel, *panelRecorder) {
	t.Helper()
	rec := &panelRecorder{}
	p := NewSettingsPanel(PanelConfig{
		Catalog:  testhelpers.Catalog(),
		OnSubmit: func(s models.ArticleState) { rec.submitted = append(rec.submitted, s) },
		OnReset:  func(s models.ArticleState) { rec.reset = append(rec.reset, s) },
		Regions:  regions,
	})
	return p, rec
}

func TestNewSettingsPanel_InitialState(t *testing.T) {
	catalog := testhelpers.Catalog()
	p, _ := newTestPanel(t, nil)

	assert.False(t, p.IsOpen())
	assert.Equal(t, catalog.Initial(), p.Options())
	for _, cat := range models.Categories() {
		assert.Equal(t, catalog.Options(cat)[0], p.pickers[cat].Selected(), cat.String())
	}
}

func TestNewSettingsPanel_InvalidCatalogPanics(t *testing.T) {
	empty := testhelpers.Catalog()
	empty.FontSizes = nil

	dangling := testhelpers.Catalog()
	dangling.Defaults = map[string]string{"font_size": "99px"}

	assert.Panics(t, func() { NewSettingsPanel(PanelConfig{}) })
	assert.Panics(t, func() { NewSettingsPanel(PanelConfig{Catalog: empty}) })
	assert.Panics(t, func() { NewSettingsPanel(PanelConfig{Catalog: dangling}) })
}

func TestSelectOption_ChangesOnlyThatField(t *testing.T) {
	catalog := testhelpers.Catalog()

	for _, cat := range models.Categories() {
		for _, opt := range catalog.Options(cat) {
			p, _ := newTestPanel(t, nil)
			before := p.Options()

			p.SelectOption(cat, opt)

			after := p.Options()
			assert.Equal(t, opt, after.Get(cat))
			assert.Equal(t, opt, p.pickers[cat].Selected(), "picker shows the new selection")
			for _, other := range models.Categories() {
				if other != cat {
					assert.Equal(t, before.Get(other), after.Get(other), "%s changed when selecting %s", other, cat)
				}
			}
			assert.False(t, p.IsOpen())
		}
	}
}

func TestSelectOption_UnknownCategoryIsIgnored(t *testing.T) {
	p, _ := newTestPanel(t, nil)
	before := p.Options()

	assert.NotPanics(t, func() {
		p.SelectOption(models.Category(9), models.Option{Title: "Huge", Value: "99px"})
		p.SelectOption(models.Category(-1), models.Option{Title: "Huge", Value: "99px"})
	})
	assert.Equal(t, before, p.Options())
}

func TestSelectOption_LogsOptionsOutsideCatalog(t *testing.T) {
	dir := t.TempDir()
	logging.Init(logging.Config{Dir: dir, Level: "debug"})
	t.Cleanup(logging.Shutdown)

	p, _ := newTestPanel(t, nil)
	stray := models.Option{Title: "Huge", Value: "99px"}
	p.SelectOption(models.CategoryFontSize, stray)
	p.SelectOption(models.CategoryFontSize, testhelpers.Catalog().FontSizes[1])
	logging.Shutdown()

	assert.Equal(t, stray, p.Options().FontSizeOption, "the caller contract is logged, not enforced")

	content, err := os.ReadFile(filepath.Join(dir, logging.LogFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "option_not_in_catalog"))
	assert.Contains(t, string(content), `"value":"99px"`)
}

func TestSubmit_ReportsCurrentOptions(t *testing.T) {
	catalog := testhelpers.Catalog()
	p, rec := newTestPanel(t, nil)
	initial := p.Options()

	p.SelectOption(models.CategoryFontSize, catalog.FontSizes[2])
	p.Submit()

	require.Len(t, rec.submitted, 1)
	got := rec.submitted[0]
	assert.Equal(t, catalog.FontSizes[2], got.FontSizeOption)
	assert.Equal(t, initial.FontFamilyOption, got.FontFamilyOption)
	assert.Equal(t, initial.FontColor, got.FontColor)
	assert.Equal(t, initial.BackgroundColor, got.BackgroundColor)
	assert.Equal(t, initial.ContentWidth, got.ContentWidth)
	assert.Equal(t, got, p.Options(), "submit does not mutate the selections")
	assert.Empty(t, rec.reset)
}

func TestSubmit_LeavesOpenStateAlone(t *testing.T) {
	for _, open := range []bool{false, true} {
		p, _ := newTestPanel(t, nil)
		if open {
			p.Toggle()
		}
		p.Submit()
		p.Reset()
		assert.Equal(t, open, p.IsOpen())
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	catalog := testhelpers.Catalog()
	p, rec := newTestPanel(t, nil)

	p.SelectOption(models.CategoryFontFamily, catalog.FontFamilies[2])
	p.SelectOption(models.CategoryBackgroundColor, catalog.BackgroundColors[1])
	p.SelectOption(models.CategoryFontSize, catalog.FontSizes[1])
	p.Reset()

	defaults := catalog.DefaultState()
	require.Len(t, rec.reset, 1)
	assert.Equal(t, defaults, rec.reset[0])
	assert.Equal(t, defaults, p.Options())
	assert.Equal(t, "948px", p.Options().ContentWidth.Value)
	for _, cat := range models.Categories() {
		assert.Equal(t, defaults.Get(cat), p.pickers[cat].Selected())
	}
	assert.Empty(t, rec.submitted)
}

func TestReset_FromAnySelection(t *testing.T) {
	catalog := testhelpers.Catalog()
	defaults := catalog.DefaultState()

	for i := 0; i < 3; i++ {
		p, rec := newTestPanel(t, nil)
		for _, cat := range models.Categories() {
			opts := catalog.Options(cat)
			p.SelectOption(cat, opts[i%len(opts)])
		}
		p.Reset()
		assert.Equal(t, defaults, p.Options())
		assert.Equal(t, []models.ArticleState{defaults}, rec.reset)
	}
}

func TestCallbacksAreOptional(t *testing.T) {
	p := NewSettingsPanel(PanelConfig{Catalog: testhelpers.Catalog()})
	assert.NotPanics(t, func() {
		p.Submit()
		p.Reset()
	})
	assert.Equal(t, testhelpers.Catalog().DefaultState(), p.Options())
}

func TestToggle_TwiceRestoresState(t *testing.T) {
	p, _ := newTestPanel(t, nil)
	for _, start := range []bool{false, true} {
		if p.IsOpen() != start {
			p.Toggle()
		}
		p.Toggle()
		p.Toggle()
		assert.Equal(t, start, p.IsOpen())
	}
}

func TestToggle_KeepsSelections(t *testing.T) {
	catalog := testhelpers.Catalog()
	p, _ := newTestPanel(t, nil)
	p.SelectOption(models.CategoryFontColor, catalog.FontColors[2])
	want := p.Options()

	p.Toggle()
	p.CloseOnOutsideInteraction()
	p.Toggle()

	assert.Equal(t, want, p.Options())
}

func TestCloseOnOutsideInteraction(t *testing.T) {
	p, _ := newTestPanel(t, nil)

	p.CloseOnOutsideInteraction()
	assert.False(t, p.IsOpen(), "closing a closed panel is a no-op")

	p.Toggle()
	p.CloseOnOutsideInteraction()
	assert.False(t, p.IsOpen())
}

func TestPanelKeys_IgnoredWhileClosed(t *testing.T) {
	p, rec := newTestPanel(t, nil)

	handled, _ := p.Update(testhelpers.Key(tea.KeyCtrlS))
	assert.False(t, handled)
	assert.Empty(t, rec.submitted)
}

func TestPanelKeys_SubmitAndResetAreConsumed(t *testing.T) {
	p, rec := newTestPanel(t, nil)
	p.Toggle()

	handled, _ := p.Update(testhelpers.Key(tea.KeyCtrlS))
	assert.True(t, handled)
	require.Len(t, rec.submitted, 1)

	handled, _ = p.Update(testhelpers.Key(tea.KeyCtrlR))
	assert.True(t, handled)
	require.Len(t, rec.reset, 1)
	assert.True(t, p.IsOpen())
}

func TestPanelKeys_FocusNavigation(t *testing.T) {
	p, rec := newTestPanel(t, nil)
	p.Toggle()

	assert.Equal(t, 0, p.FocusIndex())
	p.Update(testhelpers.Key(tea.KeyUp))
	assert.Equal(t, focusApply, p.FocusIndex(), "focus wraps to the last control")

	handled, _ := p.Update(testhelpers.Key(tea.KeyEnter))
	assert.True(t, handled)
	assert.Len(t, rec.submitted, 1)

	p.Update(testhelpers.Key(tea.KeyShiftTab))
	assert.Equal(t, focusReset, p.FocusIndex())
	p.Update(testhelpers.Key(tea.KeyEnter))
	assert.Len(t, rec.reset, 1)

	p.Update(testhelpers.Key(tea.KeyTab))
	p.Update(testhelpers.Key(tea.KeyTab))
	assert.Equal(t, 0, p.FocusIndex())
}

func TestPanelKeys_PickWithDropdown(t *testing.T) {
	catalog := testhelpers.Catalog()
	p, _ := newTestPanel(t, nil)
	p.Toggle()

	p.Update(testhelpers.Key(tea.KeyRight))
	assert.Equal(t, catalog.FontFamilies[1], p.Options().FontFamilyOption)

	p.Update(testhelpers.Key(tea.KeyEnter))
	sel := p.pickers[models.CategoryFontFamily].(*Select)
	require.True(t, sel.IsOpen())

	handled, _ := p.Update(testhelpers.Runes("ays"))
	assert.True(t, handled, "typing goes to the filter")
	assert.Equal(t, []models.Option{catalog.FontFamilies[2]}, sel.Matches())

	p.Update(testhelpers.Key(tea.KeyEnter))
	assert.False(t, sel.IsOpen())
	assert.Equal(t, catalog.FontFamilies[2], p.Options().FontFamilyOption)
}

func TestPanelKeys_EscClosesDropdownThenPanel(t *testing.T) {
	p, _ := newTestPanel(t, nil)
	p.Toggle()
	p.Update(testhelpers.Key(tea.KeyEnter))
	sel := p.pickers[models.CategoryFontFamily].(*Select)
	require.True(t, sel.IsOpen())

	p.Update(testhelpers.Key(tea.KeyEsc))
	assert.False(t, sel.IsOpen())
	assert.True(t, p.IsOpen())

	p.Update(testhelpers.Key(tea.KeyEsc))
	assert.False(t, p.IsOpen())
}

func TestPanelKeys_FontSizeRadio(t *testing.T) {
	catalog := testhelpers.Catalog()
	p, _ := newTestPanel(t, nil)
	p.Toggle()

	for i := 0; i < int(models.CategoryFontSize); i++ {
		p.Update(testhelpers.Key(tea.KeyDown))
	}
	require.Equal(t, int(models.CategoryFontSize), p.FocusIndex())

	p.Update(testhelpers.Runes("l"))
	p.Update(testhelpers.Runes("l"))
	assert.Equal(t, catalog.FontSizes[2], p.Options().FontSizeOption)

	p.Update(testhelpers.Runes("h"))
	assert.Equal(t, catalog.FontSizes[1], p.Options().FontSizeOption)
}

func TestPanelKeys_UnknownKeysReachHost(t *testing.T) {
	p, _ := newTestPanel(t, nil)
	p.Toggle()

	handled, _ := p.Update(testhelpers.Runes("q"))
	assert.False(t, handled)
}

func TestPanelMouse_ToggleButton(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	regions.Place(toggleButtonID, 70, 0, 74, 2)
	regions.Place(panelRootID, 70, 0, 119, 39)
	p, _ := newTestPanel(t, regions)
	p.Mount()

	handled, _ := p.Update(regions.ClickIn(toggleButtonID))
	assert.True(t, handled)
	assert.True(t, p.IsOpen())

	handled, _ = p.Update(regions.ClickIn(toggleButtonID))
	assert.True(t, handled)
	assert.False(t, p.IsOpen())
}

func TestPanelMouse_OutsidePressCloses(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	regions.Place(panelRootID, 70, 0, 119, 39)
	p, rec := newTestPanel(t, regions)
	p.Mount()
	p.Toggle()

	handled, _ := p.Update(testhelpers.Press(90, 10))
	assert.True(t, handled, "presses inside the panel are consumed")
	assert.True(t, p.IsOpen())

	handled, _ = p.Update(testhelpers.Wheel(10, 10))
	assert.False(t, handled)
	assert.True(t, p.IsOpen(), "wheel does not dismiss")

	p.Update(testhelpers.Release(10, 10))
	assert.True(t, p.IsOpen(), "release does not dismiss")

	handled, _ = p.Update(testhelpers.Press(10, 10))
	assert.False(t, handled)
	assert.False(t, p.IsOpen())

	p.Update(testhelpers.Press(10, 10))
	assert.False(t, p.IsOpen())
	assert.Empty(t, rec.submitted)
	assert.Empty(t, rec.reset)
}

func TestPanelMouse_UnmountedPanelIgnoresOutsidePress(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	regions.Place(panelRootID, 70, 0, 119, 39)
	p, _ := newTestPanel(t, regions)
	p.Toggle()

	p.Update(testhelpers.Press(10, 10))
	assert.True(t, p.IsOpen(), "not mounted yet")

	p.Mount()
	p.Unmount()
	p.Unmount()
	p.Update(testhelpers.Press(10, 10))
	assert.True(t, p.IsOpen())
}

func TestPanelMouse_Buttons(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	regions.Place(panelRootID, 70, 0, 119, 39)
	regions.Place(resetButtonID, 75, 35, 83, 37)
	regions.Place(applyButtonID, 86, 35, 94, 37)
	p, rec := newTestPanel(t, regions)
	p.Mount()
	p.Toggle()

	handled, _ := p.Update(regions.ClickIn(applyButtonID))
	assert.True(t, handled)
	assert.Len(t, rec.submitted, 1)
	assert.Equal(t, focusApply, p.FocusIndex())

	handled, _ = p.Update(regions.ClickIn(resetButtonID))
	assert.True(t, handled)
	assert.Len(t, rec.reset, 1)
	assert.True(t, p.IsOpen())
}

func TestPanelMouse_PressElsewhereInPanelClosesDropdown(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	regions.Place(panelRootID, 70, 0, 119, 39)
	regions.Place("picker-font_family", 72, 3, 110, 12)
	p, _ := newTestPanel(t, regions)
	p.Mount()
	p.Toggle()
	p.Update(testhelpers.Key(tea.KeyEnter))
	sel := p.pickers[models.CategoryFontFamily].(*Select)
	require.True(t, sel.IsOpen())

	handled, _ := p.Update(testhelpers.Press(80, 30))
	assert.True(t, handled)
	assert.False(t, sel.IsOpen())
	assert.True(t, p.IsOpen())
}

func TestPanelMouse_ClickPicksOption(t *testing.T) {
	catalog := testhelpers.Catalog()
	regions := testhelpers.NewFakeRegions()
	regions.Place(panelRootID, 70, 0, 119, 39)
	regions.Place("picker-font_size-option-1", 80, 30, 86, 30)
	p, _ := newTestPanel(t, regions)
	p.Mount()
	p.Toggle()

	handled, _ := p.Update(regions.ClickIn("picker-font_size-option-1"))
	assert.True(t, handled)
	assert.Equal(t, catalog.FontSizes[1], p.Options().FontSizeOption)
	assert.Equal(t, int(models.CategoryFontSize), p.FocusIndex())
}

func TestPanelView(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	p, _ := newTestPanel(t, regions)

	closed := p.View()
	assert.Contains(t, closed, Arrow(false))
	assert.NotContains(t, closed, panelTitle)
	assert.True(t, regions.Marked(panelRootID))
	assert.True(t, regions.Marked(toggleButtonID))

	regions.ResetMarks()
	p.Toggle()
	open := p.View()
	assert.Contains(t, open, Arrow(true))
	assert.Contains(t, open, panelTitle)
	for _, cat := range models.Categories() {
		assert.Contains(t, open, cat.Title())
	}
	assert.Contains(t, open, "Reset")
	assert.Contains(t, open, "Apply")
	assert.True(t, regions.Marked(resetButtonID))
	assert.True(t, regions.Marked(applyButtonID))
	assert.True(t, regions.Marked(panelRootID))

	fontColor := strings.Index(open, models.CategoryFontColor.Title())
	separator := strings.Index(open, "╌╌╌╌")
	background := strings.Index(open, models.CategoryBackgroundColor.Title())
	assert.Less(t, fontColor, separator)
	assert.Less(t, separator, background)
}
