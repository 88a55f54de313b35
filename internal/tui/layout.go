package tui

// Layout holds calculated dimensions for the picker screen
type Layout struct {
	// Area the picker is centred in
	ContentWidth  int
	ContentHeight int

	// Width of the closed input field
	InputWidth int

	// Bottom bar
	StatusHeight int // Fixed: 1 line
}

const (
	maxInputWidth = 48
	minInputWidth = 20
)

// CalculateLayout computes the content area and input width from the
// terminal dimensions. The input takes 60% of the width within fixed bounds.
func CalculateLayout(termWidth, termHeight int) Layout {
	l := Layout{
		StatusHeight: 1,
	}

	l.ContentWidth = max(termWidth, 0)
	l.ContentHeight = max(termHeight-l.StatusHeight, 0)

	l.InputWidth = int(float64(termWidth) * 0.60)
	if l.InputWidth > maxInputWidth {
		l.InputWidth = maxInputWidth
	}
	if l.InputWidth < minInputWidth {
		l.InputWidth = minInputWidth
	}

	return l
}
