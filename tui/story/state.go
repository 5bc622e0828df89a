package story

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/syntheticahq/synthterm/app"
	"github.com/syntheticahq/synthterm/domain"
	"github.com/syntheticahq/synthterm/tui/common"
)

// StoriesLoadedMsg is sent when the feed fetch completes successfully.
type StoriesLoadedMsg struct {
	Stories []domain.Story
}

// StoriesErrorMsg is sent when the feed fetch fails. The collection stays
// empty; the error is rendered in the page body.
type StoriesErrorMsg struct {
	Err error
}

// LikeStoryMsg is sent when the user wants to like a story.
type LikeStoryMsg struct {
	ID int64
}

// LikeResultMsg is sent after a like request settles.
type LikeResultMsg struct {
	ID  int64
	Err error
}

// StoryCreatedMsg is sent by the compose flow after the server accepted a
// new story; the authoritative representation is prepended to the feed.
type StoryCreatedMsg struct {
	Story domain.Story
}

// AuthRequiredMsg signals that an action needs a signed-in session. The root
// model turns it into a sign-in prompt.
type AuthRequiredMsg struct{}

// LikeFailedMsg signals a like that settled with a non-auth error after the
// speculative state was reverted.
type LikeFailedMsg struct {
	Err error
}

// Tab selects between the two story views.
type Tab int

const (
	TabYours Tab = iota // "Your Story" — invitation to share
	TabEveryone
)

// ParseTab restores a persisted tab name; unknown values fall back to
// TabYours, matching the site's default.
func ParseTab(s string) Tab {
	if s == "everyone" {
		return TabEveryone
	}
	return TabYours
}

// Name returns the persistable tab name.
func (t Tab) Name() string {
	if t == TabEveryone {
		return "everyone"
	}
	return "yours"
}

// LikeStatus tags an item's like relationship with the server. The
// speculative placeholder is tracked here, not by a sentinel entry in the
// Like collection.
type LikeStatus int

const (
	LikeIdle      LikeStatus = iota
	LikePending              // speculative like applied, request in flight
	LikeConfirmed            // server accepted; speculative state stands
	LikeFailed               // last attempt reverted; retry allowed
)

// StoryItem is a feed entry plus its like-transition tag.
type StoryItem struct {
	Story      domain.Story
	LikeStatus LikeStatus
}

func itemID(it StoryItem) int64 { return it.Story.ID }

// Model holds the state for the story feed page.
type Model struct {
	svc     app.StoryService
	session app.SessionReader

	tab      Tab
	items    []StoryItem
	pending  map[int64]StoryItem // pre-mutation snapshots, one per in-flight like
	expanded map[int64]bool
	cursor   int
	loading  bool
	err      error

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a story feed model with injected dependencies.
func New(svc app.StoryService, session app.SessionReader, initialTab string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DC4FF"))

	return Model{
		svc:      svc,
		session:  session,
		tab:      ParseTab(initialTab),
		pending:  make(map[int64]StoryItem),
		expanded: make(map[int64]bool),
		loading:  true,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
	}
}

// Init starts the one-time feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStories(), m.spinner.Tick)
}

// ActiveTab returns the current tab, for UI state persistence.
func (m Model) ActiveTab() Tab { return m.tab }

// Update handles messages for the story feed page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}
