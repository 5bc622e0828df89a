// Package pickup renders the curated discovery page: trending videos,
// featured creators, and community story highlights.
package pickup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/catalog"
	"github.com/syntheticahq/synthterm/tui/common"
)

// Tab selects one of the three catalog views.
type Tab int

const (
	TabVideos Tab = iota
	TabCreators
	TabStories
)

var tabNames = map[Tab]string{
	TabVideos:   "videos",
	TabCreators: "creators",
	TabStories:  "stories",
}

// ParseTab restores a persisted tab name; unknown values fall back to
// TabVideos.
func ParseTab(s string) Tab {
	for t, name := range tabNames {
		if name == s {
			return t
		}
	}
	return TabVideos
}

// Name returns the persistable tab name.
func (t Tab) Name() string { return tabNames[t] }

// Model holds the state for the pick-up page. The catalog is static, so
// there is no loading state.
type Model struct {
	tab    Tab
	cursor int
	keys   common.KeyMap

	videos   []catalog.Video
	creators []catalog.Creator
	stories  []catalog.TrendingStory
}

// New creates a pick-up model on the given tab.
func New(initialTab string) Model {
	return Model{
		tab:      ParseTab(initialTab),
		keys:     common.DefaultKeyMap(),
		videos:   catalog.Videos(),
		creators: catalog.Creators(),
		stories:  catalog.TrendingStories(),
	}
}

// Init is a no-op.
func (m Model) Init() tea.Cmd { return nil }

// ActiveTab returns the current tab, for UI state persistence.
func (m Model) ActiveTab() Tab { return m.tab }

func (m Model) itemCount() int {
	switch m.tab {
	case TabVideos:
		return len(m.videos)
	case TabCreators:
		return len(m.creators)
	default:
		return len(m.stories)
	}
}

// Update handles messages for the pick-up page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextTab), key.Matches(keyMsg, m.keys.Right):
		m.tab = (m.tab + 1) % 3
		m.cursor = 0

	case key.Matches(keyMsg, m.keys.Left):
		m.tab = (m.tab + 2) % 3
		m.cursor = 0

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Open):
		if m.tab == TabVideos && m.cursor < len(m.videos) {
			return m, common.OpenURL(m.videos[m.cursor].URL)
		}
	}
	return m, nil
}

// View renders the pick-up page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(renderTabs(m.tab) + "\n\n")

	switch m.tab {
	case TabVideos:
		for i, v := range m.videos {
			line := fmt.Sprintf("%s\n%s  %s",
				common.ContentStyle.Bold(true).Render(v.Title),
				common.AuthorStyle.Render(v.Channel),
				common.MetadataStyle.Render(v.Views+" views"))
			b.WriteString(renderCard(line, i == m.cursor))
		}
		b.WriteString(common.StatusBarStyle.Render("  o: watch in browser"))

	case TabCreators:
		for i, c := range m.creators {
			line := fmt.Sprintf("%s  %s\n%s",
				common.AuthorStyle.Render(c.Name),
				common.MetadataStyle.Render(c.Subscribers+" subscribers"),
				common.ContentStyle.Render(c.Bio))
			b.WriteString(renderCard(line, i == m.cursor))
		}

	default:
		for i, s := range m.stories {
			line := fmt.Sprintf("%s\n%s\n%s",
				common.AuthorStyle.Render(s.User),
				common.ContentStyle.Render("\""+s.Excerpt+"\""),
				common.MetadataStyle.Render(fmt.Sprintf("♥ %d  💬 %d", s.Likes, s.Comments)))
			b.WriteString(renderCard(line, i == m.cursor))
		}
	}

	return b.String()
}

func renderTabs(active Tab) string {
	labels := []string{"Trending Videos", "Featured Creators", "Community Stories"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if Tab(i) == active {
			parts[i] = common.TabActiveStyle.Render(label)
		} else {
			parts[i] = common.TabInactiveStyle.Render(label)
		}
	}
	return "  " + strings.Join(parts, " ")
}

func renderCard(content string, selected bool) string {
	if selected {
		return common.SelectedStyle.Render(content) + "\n"
	}
	return common.UnselectedStyle.Render(content) + "\n"
}
