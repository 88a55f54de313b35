package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBar_View(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(60)
	sb.SetHints("enter:open q:quit")

	assert.Contains(t, sb.View(), "enter:open q:quit")

	sb.SetMessage("Config reloaded", false)
	view := sb.View()
	assert.Contains(t, view, "enter:open q:quit")
	assert.Contains(t, view, "Config reloaded")
	assert.Equal(t, "Config reloaded", sb.Message())
}

func TestStatusBar_TruncatesMessageFirst(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(40)
	sb.SetHints("enter:open q:quit")
	sb.SetMessage(strings.Repeat("x", 100), true)

	view := sb.View()
	assert.Contains(t, view, "enter:open q:quit")
	assert.Contains(t, view, "...")
	assert.NotContains(t, view, strings.Repeat("x", 30))
}
