package story

import (
	"fmt"
	"strings"

	"github.com/syntheticahq/synthterm/tui/common"
)

// View renders the story feed page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(renderTabs(m.tab) + "\n\n")

	if m.tab == TabYours {
		b.WriteString("  Have you used Synthetica? We'd love to hear how it's\n")
		b.WriteString("  changed your creative workflow.\n\n")
		b.WriteString(common.SuccessStyle.Render("  Press p to share your story") + "\n")
		return b.String()
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading stories...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.items) == 0:
		b.WriteString("  No stories yet. Be the first!\n")
	default:
		for i, it := range m.items {
			b.WriteString(m.renderItem(it, i == m.cursor))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTabs(active Tab) string {
	yours := common.TabInactiveStyle.Render("Your Story")
	everyone := common.TabInactiveStyle.Render("Story of Everyone")
	if active == TabYours {
		yours = common.TabActiveStyle.Render("Your Story")
	} else {
		everyone = common.TabActiveStyle.Render("Story of Everyone")
	}
	return "  " + yours + " " + everyone
}

func (m Model) renderItem(it StoryItem, selected bool) string {
	st := it.Story

	title := common.ContentStyle.Bold(true).Render(st.Title)
	byline := common.AuthorStyle.Render("By "+st.Author) + "  " +
		common.TimestampStyle.Render(st.CreatedAt.Format("Jan 02, 2006"))

	likeIcon := "♡"
	likeStyle := common.MetadataStyle
	if st.Liked {
		likeIcon = "♥"
		likeStyle = common.LikeActiveStyle
	}
	meta := fmt.Sprintf("%s %d  💬 %d", likeStyle.Render(likeIcon), st.LikeCount(), len(st.Comments))
	switch it.LikeStatus {
	case LikePending:
		meta += common.TimestampStyle.Render("  (liking...)")
	case LikeFailed:
		meta += common.ErrorStyle.Render("  (like failed)")
	}

	var body string
	if m.expanded[st.ID] {
		detail := common.ContentStyle.Render(st.Detail)
		var comments strings.Builder
		if len(st.Comments) == 0 {
			comments.WriteString(common.TimestampStyle.Render("No comments yet."))
		} else {
			comments.WriteString(common.MetadataStyle.Render("Comments"))
			for _, c := range st.Comments {
				comments.WriteString("\n" + common.AuthorStyle.Render(c.Author+":") + " " +
					common.ContentStyle.Render(c.Text))
			}
		}
		body = detail + "\n\n" + comments.String()
	} else {
		width := m.width - 10
		if width <= 0 {
			width = 70
		}
		body = common.TruncateLines(common.ContentStyle.Render(st.Detail), width, 2)
	}

	card := fmt.Sprintf("%s\n%s\n%s\n%s", title, byline, body, meta)
	if selected {
		return common.SelectedStyle.Render(card)
	}
	return common.UnselectedStyle.Render(card)
}
