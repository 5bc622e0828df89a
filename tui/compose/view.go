package compose

import (
	"fmt"
	"strings"

	"github.com/syntheticahq/synthterm/tui/common"
)

// View renders the compose form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("Synthetica"))
	b.WriteString("  Share Your Story\n\n")

	b.WriteString(common.MetadataStyle.Render("  Title") + "\n")
	b.WriteString("  " + m.title.View() + "\n\n")
	b.WriteString(common.MetadataStyle.Render("  Your story") + "\n")
	b.WriteString(m.detail.View())
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(common.StatusBarStyle.Render("  Sharing..."))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  " + m.err.Error()))
	default:
		b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf(
			"  ctrl+d: share • ctrl+e: open editor • tab: next field • esc: cancel • %d/2000 chars",
			len(m.detail.Value()),
		)))
	}

	return b.String()
}
