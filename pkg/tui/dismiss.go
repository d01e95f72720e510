package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// DismissWatcher closes its owner when the mouse is pressed outside the
// owner's root regions. It only reacts while attached.
type DismissWatcher struct {
	regions  Regions
	rootIDs  []string
	onChange func(open bool)
	onClose  func()
	attached bool
}

// NewDismissWatcher creates a detached watcher for the given root region ids.
// Either callback may be nil.
func NewDismissWatcher(regions Regions, rootIDs []string, onChange func(bool), onClose func()) *DismissWatcher {
	if regions == nil {
		regions = noRegions{}
	}
	return &DismissWatcher{
		regions:  regions,
		rootIDs:  rootIDs,
		onChange: onChange,
		onClose:  onClose,
	}
}

// Attach starts delivering mouse presses to the watcher
func (w *DismissWatcher) Attach() {
	w.attached = true
}

// Detach stops the watcher. Calling it more than once is fine.
func (w *DismissWatcher) Detach() {
	w.attached = false
}

// Inside reports whether the press landed in one of the root regions
func (w *DismissWatcher) Inside(msg tea.MouseMsg) bool {
	for _, id := range w.rootIDs {
		if w.regions.InBounds(id, msg) {
			return true
		}
	}
	return false
}

// HandleMouse runs the dismiss callbacks for a press outside every root
// region. onClose only runs when isOpen is true; onChange(false) always
// runs. It returns true when the callbacks fired.
func (w *DismissWatcher) HandleMouse(msg tea.MouseMsg, isOpen bool) bool {
	if !w.attached || !isPress(msg) || w.Inside(msg) {
		return false
	}

	if isOpen && w.onClose != nil {
		w.onClose()
	}
	if w.onChange != nil {
		w.onChange(false)
	}
	return true
}
