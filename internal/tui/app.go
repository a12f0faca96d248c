// ABOUTME: Main Bubble Tea application model
// ABOUTME: Hosts the view router and drives domain operations from key events

package tui

import (
	"errors"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moireu/internal/models"
	"moireu/internal/render"
	"moireu/internal/router"
	"moireu/internal/state"
	"moireu/internal/storage"
)

// composeTarget says what the compose buffer submits to.
type composeTarget int

const (
	composeNone composeTarget = iota
	composePost
	composeReply
	composeMessage
)

// Model is the main application state. Every key handler runs one domain
// operation to completion (including its persist) before re-rendering, so
// the single-writer ordering of the store is preserved.
type Model struct {
	store   *state.Store
	router  *router.Router
	content string
	width   int
	height  int
	cursor  int

	composing   composeTarget
	composeText string

	notice string
	err    error
}

// NewModel creates the TUI model positioned on the given initial route.
func NewModel(store *state.Store, initial router.Route) Model {
	r := router.New()
	render.Register(r, store)
	m := Model{store: store, router: r}
	m.content = r.NavigateRoute(initial)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.composing != composeNone {
			return m.updateCompose(msg)
		}
		return m.updateNavigation(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case error:
		m.err = msg
		return m, nil
	}
	return m, nil
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "f":
		return m.navigate(router.ViewFeed, nil), nil
	case "c":
		return m.navigate(router.ViewCharacterList, nil), nil
	case "d":
		return m.navigate(router.ViewDMList, nil), nil
	case "u":
		return m.navigate(router.ViewUniverse, nil), nil

	case "n":
		if m.router.Current().View == router.ViewDMChat {
			m.composing = composeMessage
		} else {
			m = m.navigate(router.ViewPostEditor, nil)
			m.composing = composePost
		}
		m.composeText = ""
		return m, nil

	case "r":
		if m.router.Current().View == router.ViewReplies {
			params := m.router.Current().Params
			m = m.navigate(router.ViewReplyEditor, params)
			m.composing = composeReply
			m.composeText = ""
		}
		return m, nil

	case "j", "down":
		m.cursor++
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter":
		return m.open(), nil

	case "esc":
		return m.navigate(router.ViewFeed, nil), nil
	}
	return m, nil
}

// open drills into the item under the cursor for the current list view.
func (m Model) open() Model {
	switch m.router.Current().View {
	case router.ViewFeed:
		posts := m.store.Feed()
		if len(posts) == 0 {
			return m
		}
		post := posts[min(m.cursor, len(posts)-1)]
		// Opening a post's replies triggers the one-shot character
		// generation for it.
		if _, err := m.store.GenerateCharacterReplies(post.ID); err != nil {
			m.noteError(err)
		}
		return m.navigate(router.ViewReplies, router.Params{"postId": post.ID})

	case router.ViewCharacterList:
		profiles := m.store.Profiles()
		if len(profiles) == 0 {
			return m
		}
		p := profiles[min(m.cursor, len(profiles)-1)]
		return m.navigate(router.ViewProfileEditor, router.Params{"username": p.Username})

	case router.ViewDMList:
		rows := m.store.Conversations()
		if len(rows) == 0 {
			return m
		}
		row := rows[min(m.cursor, len(rows)-1)]
		return m.navigate(router.ViewDMChat, router.Params{
			"conversationKey": row.Key,
			"otherUsername":   row.Other,
		})
	}
	return m
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = composeNone
		m.composeText = ""
		return m.refresh(), nil

	case "enter":
		return m.submitCompose()

	case "backspace":
		if m.composeText != "" {
			_, size := utf8.DecodeLastRuneInString(m.composeText)
			m.composeText = m.composeText[:len(m.composeText)-size]
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.composeText += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.composeText += " "
		}
		return m, nil
	}
}

// submitCompose runs the domain operation for the active compose target and
// returns the model on the appropriate view. Validation failures keep the
// compose buffer open with a notice; storage failures keep the result with a
// warning.
func (m Model) submitCompose() (tea.Model, tea.Cmd) {
	var err error
	target := m.composing
	route := m.router.Current()

	switch target {
	case composePost:
		_, err = m.store.SavePost(m.store.LocalUsername(), "", m.composeText)
		if err == nil || isStorageErr(err) {
			m.composing = composeNone
			m.composeText = ""
			m.noteError(err)
			return m.navigate(router.ViewFeed, nil), nil
		}

	case composeReply:
		postID := route.Params.String("postId")
		_, err = m.store.PublishReply(postID, m.composeText)
		if err == nil || isStorageErr(err) {
			m.composing = composeNone
			m.composeText = ""
			m.noteError(err)
			return m.navigate(router.ViewReplies, router.Params{"postId": postID}), nil
		}

	case composeMessage:
		_, err = m.store.AppendMessage(route.Params.String("conversationKey"), m.composeText)
		if err == nil || isStorageErr(err) {
			m.composing = composeNone
			m.composeText = ""
			m.noteError(err)
			return m.refresh(), nil
		}
	}

	// Validation failure: keep composing, show the reason.
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		m.notice = verr.Error()
	} else if err != nil {
		m.notice = err.Error()
	}
	return m, nil
}

// navigate moves the router and re-renders. The cursor resets per view.
func (m Model) navigate(v router.View, params router.Params) Model {
	m.content = m.router.Navigate(v, params)
	m.cursor = 0
	return m
}

// refresh re-renders the current route after a mutation.
func (m Model) refresh() Model {
	m.content = m.router.NavigateRoute(m.router.Current())
	return m
}

// noteError records a save failure as a footer notice. The in-memory
// document already holds the mutation; the session continues.
func (m *Model) noteError(err error) {
	if err == nil {
		m.notice = ""
		return
	}
	m.notice = err.Error()
}

func isStorageErr(err error) bool {
	var serr *storage.StorageError
	return errors.As(err, &serr)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := lipgloss.NewStyle().Bold(true).Render("MOIREU")
	tabs := lipgloss.NewStyle().Faint(true).
		Render("  [f] feed  [c] characters  [d] dms  [u] universe")

	body := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(m.height - 5).
		Render(m.content)

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("[j/k] move  [enter] open  [n] new  [r] reply  [q] quit")
	if m.composing != composeNone {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).
			Render("Composing: " + m.composeText + "█  [enter] submit  [esc] cancel")
	}
	if m.notice != "" {
		status += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title+tabs, body, status)
}

// Run starts the TUI on the given initial route.
func Run(store *state.Store, initial router.Route) error {
	p := tea.NewProgram(NewModel(store, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
