package core

// Label is a single line of text owned by a platform and overwritten by the
// game, such as a score readout or a window title fragment.
type Label struct {
	text string
}

// NewLabel creates a label with initial text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the current label text.
func (l *Label) Text() string {
	return l.text
}
