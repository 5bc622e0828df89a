package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/app"
	"github.com/syntheticahq/synthterm/infra/config"
	"github.com/syntheticahq/synthterm/infra/editor"
	"github.com/syntheticahq/synthterm/tui/about"
	"github.com/syntheticahq/synthterm/tui/common"
	"github.com/syntheticahq/synthterm/tui/compose"
	"github.com/syntheticahq/synthterm/tui/hello"
	"github.com/syntheticahq/synthterm/tui/home"
	"github.com/syntheticahq/synthterm/tui/pickup"
	"github.com/syntheticahq/synthterm/tui/ratio"
	"github.com/syntheticahq/synthterm/tui/story"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Stories   app.StoryService
	Survey    app.QuestionnaireService
	Session   app.SessionReader
	Editor    *editor.EnvEditor
	LoginURL  string
	State     config.UIState
	StatePath string
}

// Page identifies one of the five top-level pages.
type Page int

const (
	PageHome Page = iota
	PageHello
	PagePickup
	PageRatio
	PageStory
	PageAbout
)

var pageNames = map[Page]string{
	PageHome:   "home",
	PageHello:  "hello",
	PagePickup: "pickup",
	PageRatio:  "ratio",
	PageStory:  "story",
	PageAbout:  "about",
}

// ParsePage restores a persisted page name; unknown values fall back to
// PageHome.
func ParsePage(s string) Page {
	for p, name := range pageNames {
		if name == s {
			return p
		}
	}
	return PageHome
}

// Name returns the persistable page name.
func (p Page) Name() string { return pageNames[p] }

// App is the root Bubble Tea model. It routes between page sub-models and
// the compose overlay.
type App struct {
	deps Deps
	page Page
	keys common.KeyMap

	home   home.Model
	hello  hello.Model
	pickup pickup.Model
	ratio  ratio.Model
	story  story.Model
	about  about.Model

	composeOpen bool
	compose     compose.Model

	storyMounted bool
	status       string
	width        int
	height       int
}

// NewApp creates the root model with all dependencies wired and the last
// persisted page restored.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		page:   ParsePage(deps.State.Page),
		keys:   common.DefaultKeyMap(),
		home:   home.New(deps.Session, deps.LoginURL),
		hello:  hello.New(),
		pickup: pickup.New(deps.State.PickupTab),
		ratio:  ratio.New(deps.Survey),
		story:  story.New(deps.Stories, deps.Session, deps.State.StoryTab),
		about:  about.New(),
	}
}

// Init starts whatever the restored page needs.
func (a App) Init() tea.Cmd {
	return a.mountCmd(a.page)
}

// mountCmd returns the page's entry command. The ratio page re-runs its
// status check and overlay timer on every visit; the story feed loads once.
func (a *App) mountCmd(p Page) tea.Cmd {
	switch p {
	case PageRatio:
		a.ratio = ratio.New(a.deps.Survey)
		return a.ratio.Init()
	case PageStory:
		if a.storyMounted {
			return nil
		}
		a.storyMounted = true
		return a.story.Init()
	}
	return nil
}

func (a App) switchPage(p Page) (App, tea.Cmd) {
	if p == a.page {
		return a, nil
	}
	a.page = p
	a.status = ""
	return a, a.mountCmd(p)
}

// modalActive reports whether a sub-view currently owns all key input.
func (a App) modalActive() bool {
	return a.composeOpen || (a.page == PageHello && a.hello.TourOpen()) ||
		(a.page == PageRatio && a.ratio.ModalOpen())
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.story, _ = a.story.Update(msg)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.story, cmd = a.story.Update(msg)
		return a, cmd

	case hello.GoToRatioMsg:
		return a.switchPage(PageRatio)

	case story.AuthRequiredMsg:
		a.status = "Sign in required. Press 1 for the Home page to sign in."
		return a, nil

	case story.LikeFailedMsg:
		a.status = "Like failed: " + msg.Err.Error()
		return a, nil

	case home.SignedOutMsg:
		a.home, _ = a.home.Update(msg)
		return a, nil

	case compose.DoneMsg:
		a.composeOpen = false
		if msg.Cancelled {
			a.status = "Cancelled."
			return a, nil
		}
		a.status = "Story shared!"
		a.story, _ = a.story.Update(story.StoryCreatedMsg{Story: msg.Story})
		return a.routeToPage(PageStory)

	case tea.KeyMsg:
		if a.composeOpen {
			var cmd tea.Cmd
			a.compose, cmd = a.compose.Update(msg)
			return a, cmd
		}

		if !a.modalActive() {
			switch msg.String() {
			case "1":
				return a.switchPage(PageHome)
			case "2":
				return a.switchPage(PageHello)
			case "3":
				return a.switchPage(PagePickup)
			case "4":
				return a.switchPage(PageRatio)
			case "5":
				return a.switchPage(PageStory)
			case "6":
				return a.switchPage(PageAbout)
			}
			if key.Matches(msg, a.keys.Quit) {
				a.persistState()
				return a, tea.Quit
			}
			if a.page == PageStory && key.Matches(msg, a.keys.Compose) {
				a.composeOpen = true
				a.status = ""
				a.compose = compose.New(a.deps.Stories, a.deps.Editor)
				return a, a.compose.Init()
			}
		}
	}

	return a.routeMsg(msg)
}

// routeToPage switches to the page without triggering a fresh mount; used
// when the transition itself produced the page's new content.
func (a App) routeToPage(p Page) (tea.Model, tea.Cmd) {
	a.page = p
	a.storyMounted = true
	return a, nil
}

func (a App) routeMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.composeOpen {
		a.compose, cmd = a.compose.Update(msg)
		return a, cmd
	}
	switch a.page {
	case PageHome:
		a.home, cmd = a.home.Update(msg)
	case PageHello:
		a.hello, cmd = a.hello.Update(msg)
	case PagePickup:
		a.pickup, cmd = a.pickup.Update(msg)
	case PageRatio:
		a.ratio, cmd = a.ratio.Update(msg)
	case PageStory:
		a.story, cmd = a.story.Update(msg)
	case PageAbout:
		a.about, cmd = a.about.Update(msg)
	}
	return a, cmd
}

// persistState saves the page and tab preferences. Best effort; a failed
// save never blocks quitting.
func (a App) persistState() {
	if a.deps.StatePath == "" {
		return
	}
	_ = config.SaveUIState(a.deps.StatePath, config.UIState{
		Page:      a.page.Name(),
		PickupTab: a.pickup.ActiveTab().Name(),
		StoryTab:  a.story.ActiveTab().Name(),
	})
}

// View renders the nav bar, the active sub-model, and the status line.
func (a App) View() string {
	if a.composeOpen {
		return a.compose.View() + a.statusLine()
	}

	var b strings.Builder
	b.WriteString(a.renderNav() + "\n")

	switch a.page {
	case PageHome:
		b.WriteString(a.home.View())
	case PageHello:
		b.WriteString(a.hello.View())
	case PagePickup:
		b.WriteString(a.pickup.View())
	case PageRatio:
		b.WriteString(a.ratio.View())
	case PageStory:
		b.WriteString(a.story.View())
	case PageAbout:
		b.WriteString(a.about.View())
	}

	b.WriteString(a.statusLine())
	return b.String()
}

func (a App) renderNav() string {
	labels := []string{"1 Home", "2 Hello", "3 Pick Up", "4 Ratio", "5 Story", "6 About"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if Page(i) == a.page {
			parts[i] = common.NavActiveStyle.Render(label)
		} else {
			parts[i] = common.NavInactiveStyle.Render(label)
		}
	}
	return " " + strings.Join(parts, " ")
}

func (a App) statusLine() string {
	if a.status == "" {
		return ""
	}
	return "\n" + common.StatusBarStyle.Render(" "+a.status)
}
