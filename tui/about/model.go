// Package about renders the static company page: mission statement and the
// three value cards.
package about

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/tui/common"
)

type value struct {
	title string
	body  string
}

var values = []value{
	{title: "Innovation", body: "Pushing boundaries every day."},
	{title: "Integrity", body: "Transparent and ethical AI."},
	{title: "Community", body: "Built for and by the people."},
}

const mission = "We are a collective of dreamers, engineers, and AI enthusiasts\n" +
	"dedicated to building the most advanced digital experiences.\n" +
	"Our mission is to democratize access to powerful generative\n" +
	"technologies."

// Model holds the state for the about page. The content is static.
type Model struct{}

// New creates an about model.
func New() Model { return Model{} }

// Init is a no-op.
func (m Model) Init() tea.Cmd { return nil }

// Update ignores all messages; the page has no interactions.
func (m Model) Update(tea.Msg) (Model, tea.Cmd) { return m, nil }

// View renders the about page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("About Synthetica") + "\n\n")
	for _, line := range strings.Split(mission, "\n") {
		b.WriteString("  " + common.ContentStyle.Render(line) + "\n")
	}
	b.WriteString("\n")

	for _, v := range values {
		card := common.AuthorStyle.Render(v.title) + "\n" +
			common.MetadataStyle.Render(v.body)
		b.WriteString(common.UnselectedStyle.Render(card) + "\n")
	}

	return b.String()
}
