package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/softkeyboard/internal/cli/styles"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

func TestTheme_StatusBadge(t *testing.T) {
	theme := styles.NewTheme()

	out := theme.StatusBadge("full-screen", theme.Background, theme.Warning)
	assert.Contains(t, out, "full-screen")
}

func TestEventRenderer_RenderState_Badges(t *testing.T) {
	r := styles.NewEventRenderer(styles.NewTheme())

	out := r.RenderState(entity.VisibilityState{Shown: true, FullScreen: true})
	assert.Contains(t, out, styles.IconKeyboard+" shown")
	assert.Contains(t, out, styles.IconExpand+" full-screen")
	assert.Contains(t, out, "0px")

	out = r.RenderState(entity.VisibilityState{})
	assert.Contains(t, out, "hidden")
	assert.Contains(t, out, "windowed")
}
