package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/phonebook/internal/events"
)

func TestFromLevel(t *testing.T) {
	assert.Equal(t, Success, FromLevel(events.LevelSuccess))
	assert.Equal(t, Failure, FromLevel(events.LevelFailure))
	assert.Equal(t, Info, FromLevel(events.LevelInfo))
}

func TestRender_ContainsTitleAndMessage(t *testing.T) {
	out := Render(Failure, "Rosie Simpson is already in contacts.")

	assert.Contains(t, out, "Failure")
	assert.Contains(t, out, "Rosie Simpson is already in contacts.")
}

func TestRenderAll_OneLinePerNotification(t *testing.T) {
	out := RenderAll([]events.Notification{
		events.NewNotification(events.LevelSuccess, "first"),
		events.NewNotification(events.LevelInfo, "second"),
	})

	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Equal(t, 2, len(strings.Split(out, "\n")))
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestRenderAll_Empty(t *testing.T) {
	assert.Empty(t, RenderAll(nil))
}
