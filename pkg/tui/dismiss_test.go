package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/blogpanel/blogpanel/pkg/tui/testhelpers"
)

func TestDismissWatcher(t *testing.T) {
	tests := []struct {
		name       string
		attached   bool
		isOpen     bool
		msg        tea.MouseMsg
		wantFired  bool
		wantClose  int
		wantChange int
	}{
		{name: "outside press while open", attached: true, isOpen: true, msg: testhelpers.Press(50, 50), wantFired: true, wantClose: 1, wantChange: 1},
		{name: "outside press while closed", attached: true, isOpen: false, msg: testhelpers.Press(50, 50), wantFired: true, wantClose: 0, wantChange: 1},
		{name: "press inside root", attached: true, isOpen: true, msg: testhelpers.Press(2, 2)},
		{name: "press inside second root", attached: true, isOpen: true, msg: testhelpers.Press(20, 20)},
		{name: "release outside", attached: true, isOpen: true, msg: testhelpers.Release(50, 50)},
		{name: "wheel outside", attached: true, isOpen: true, msg: testhelpers.Wheel(50, 50)},
		{name: "detached", attached: false, isOpen: true, msg: testhelpers.Press(50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := testhelpers.NewFakeRegions()
			regions.Place("root", 0, 0, 10, 10)
			regions.Place("other", 15, 15, 25, 25)

			var closes, changes int
			var lastChange *bool
			w := NewDismissWatcher(regions, []string{"root", "other"},
				func(open bool) { changes++; lastChange = &open },
				func() { closes++ })
			if tt.attached {
				w.Attach()
			}

			fired := w.HandleMouse(tt.msg, tt.isOpen)

			assert.Equal(t, tt.wantFired, fired)
			assert.Equal(t, tt.wantClose, closes)
			assert.Equal(t, tt.wantChange, changes)
			if changes > 0 {
				assert.False(t, *lastChange)
			}
		})
	}
}

func TestDismissWatcher_DetachIsIdempotent(t *testing.T) {
	w := NewDismissWatcher(testhelpers.NewFakeRegions(), []string{"root"}, nil, nil)
	w.Attach()
	assert.True(t, w.HandleMouse(testhelpers.Press(1, 1), true))

	w.Detach()
	w.Detach()
	assert.False(t, w.HandleMouse(testhelpers.Press(1, 1), true))
}

func TestDismissWatcher_NilCallbacks(t *testing.T) {
	w := NewDismissWatcher(nil, nil, nil, nil)
	w.Attach()
	assert.NotPanics(t, func() {
		assert.True(t, w.HandleMouse(testhelpers.Press(1, 1), true))
	})
}

func TestArrowButton(t *testing.T) {
	regions := testhelpers.NewFakeRegions()
	regions.Place(toggleButtonID, 0, 0, 4, 2)
	b := NewArrowButton(regions)

	assert.NotEqual(t, Arrow(true), Arrow(false))
	assert.Contains(t, b.View(true), Arrow(true))
	assert.Contains(t, b.View(false), Arrow(false))
	assert.True(t, regions.Marked(toggleButtonID))

	assert.True(t, b.Clicked(testhelpers.Press(2, 1)))
	assert.False(t, b.Clicked(testhelpers.Release(2, 1)))
	assert.False(t, b.Clicked(testhelpers.Press(9, 9)))
}
