package ratio

import (
	"fmt"
	"strings"

	"github.com/syntheticahq/synthterm/tui/common"
)

// View renders the ratio page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("World Population & Community Reach") + "\n\n")

	chartStyle := common.ContentStyle
	if m.overlay {
		chartStyle = common.MetadataStyle // fade the base chart behind the overlay
	}
	for _, r := range worldRegions {
		b.WriteString(fmt.Sprintf("  %-10s %s %3d%%\n",
			chartStyle.Render(r.name),
			m.bars.ViewAs(float64(r.percent)/100),
			r.percent))
	}

	if m.overlay {
		b.WriteString("\n")
		b.WriteString(common.SuccessStyle.Render(fmt.Sprintf("  %d%%", communitySharePercent)))
		b.WriteString(common.ContentStyle.Render("  of surveyed creators already publish with Synthetica\n"))
	}

	b.WriteString("\n" + common.TaglineStyle.Render("Current data suggests a significant shift.") + "\n")

	if m.answered {
		b.WriteString("\n" + common.BadgeStyle.Render("✔ Status Recorded") + "\n")
		if label, ok := answerLabels[m.answer]; ok {
			b.WriteString(common.MetadataStyle.Render("  You selected: ") +
				common.AuthorStyle.Render(label) + "\n")
		}
	}

	if m.modalOpen {
		b.WriteString("\n" + common.ModalStyle.Render(m.renderModal()) + "\n")
	}

	return b.String()
}

func (m Model) renderModal() string {
	var b strings.Builder
	b.WriteString(common.AuthorStyle.Render("A Quick Question") + "\n\n")
	b.WriteString(common.ContentStyle.Render("Which statement best describes you?") + "\n\n")

	for i, opt := range answerOptions {
		marker := "( )"
		style := common.ContentStyle
		if i == m.choice {
			marker = "(•)"
			style = common.SuccessStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s", marker, opt)) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(common.StatusBarStyle.Render("Sending..."))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(m.err.Error()))
	default:
		b.WriteString(common.StatusBarStyle.Render("↑/↓: choose • enter: send • esc: skip"))
	}
	return b.String()
}
