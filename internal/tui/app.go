package tui

import (
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gpessoni/pokedex/internal/browser"
	"github.com/gpessoni/pokedex/internal/collection"
	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/notify"
	"github.com/gpessoni/pokedex/internal/session"
	"github.com/gpessoni/pokedex/internal/tui/components"
)

// ViewState represents the active screen
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewBrowse
	ViewDetail
	ViewCollection
	ViewTrainers
)

// Model is the main Bubble Tea model for the application
type Model struct {
	view  ViewState
	Ready bool

	// Services
	Catalog    domain.CatalogSource
	Auth       domain.AuthRepository
	TrainerSvc domain.TrainerRepository
	Collection *collection.Service
	Session    *session.Session

	// View-local state machines. They are only touched from Update, never
	// from command goroutines.
	Browser *browser.Browser
	Toasts  *notify.Queue

	// UI components
	List      components.PokemonList
	Search    components.SearchBar
	Login     components.LoginForm
	Caught    components.CaughtList
	Directory components.TrainerList

	// Detail view state
	Detail     *domain.Pokemon
	detailFrom ViewState

	// Dimensions
	Width  int
	Height int

	SpinnerFrame int

	// confirmRelease holds the record id armed for release; the next "x" on
	// the same record executes it.
	confirmRelease string

	loggingOut bool
	Logger     *slog.Logger
}

// NewModel creates a new application model
func NewModel(
	catalog domain.CatalogSource,
	auth domain.AuthRepository,
	trainers domain.TrainerRepository,
	coll *collection.Service,
	sess *session.Session,
	pageSize int,
	toastTTL time.Duration,
	logger *slog.Logger,
) Model {
	view := ViewLogin
	if sess.Authenticated() {
		view = ViewBrowse
	}

	m := Model{
		view:       view,
		Catalog:    catalog,
		Auth:       auth,
		TrainerSvc: trainers,
		Collection: coll,
		Session:    sess,
		Browser:    browser.New(pageSize),
		Toasts:     notify.NewQueue(toastTTL),
		Search:     components.NewSearchBar(),
		Login:      components.NewLoginForm(),
		Caught:     components.NewCaughtList(),
		Directory:  components.NewTrainerList(),
		Logger:     logger,
	}
	m.List = components.NewPokemonList(coll.Index().Owned)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(120 * time.Millisecond)}
	if m.view == ViewBrowse {
		cmds = append(cmds,
			LoadPageCmd(m.Catalog, m.Browser.LoadFirst()),
			RefreshCollectionCmd(m.Collection),
		)
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		listHeight := max(1, m.Height-6)
		m.List.SetSize(m.Width, listHeight)
		m.Caught.SetSize(m.Width, listHeight)
		m.Directory.SetSize(m.Width, listHeight)
		return m, nil

	case TickMsg:
		if m.Browser.Loading() {
			m.SpinnerFrame++
			return m, TickCmd(120 * time.Millisecond)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageLoadedMsg:
		if m.Browser.ApplyPage(msg.Seq, msg.Items, msg.HasNext) {
			m.List.SetItems(m.Browser.Items())
		}
		return m, nil

	case PageFailedMsg:
		m.Browser.Fail(msg.Seq, msg.Err)
		if errors.Is(msg.Err, domain.ErrSessionExpired) {
			return m, nil
		}
		return m, m.toast("could not load pokemons: "+shortError(msg.Err), notify.SeverityError)

	case SearchFoundMsg:
		if m.Browser.ApplySearchHit(msg.Seq, msg.Item) {
			m.List.SetItems(m.Browser.Items())
			return m, m.toast("found "+msg.Item.Name, notify.SeveritySuccess)
		}
		return m, nil

	case SearchFailedMsg:
		if errors.Is(msg.Err, domain.ErrNotFound) {
			req, ok := m.Browser.ApplySearchMiss(msg.Seq)
			if !ok {
				return m, nil
			}
			return m, tea.Batch(
				m.toast("no pokemon named "+msg.Term, notify.SeverityError),
				LoadPageCmd(m.Catalog, req),
				TickCmd(120*time.Millisecond),
			)
		}
		m.Browser.Fail(msg.Seq, msg.Err)
		if errors.Is(msg.Err, domain.ErrSessionExpired) {
			return m, nil
		}
		return m, m.toast("search failed: "+shortError(msg.Err), notify.SeverityError)

	case DetailLoadedMsg:
		item := msg.Item
		m.Detail = &item
		m.detailFrom = m.view
		m.view = ViewDetail
		return m, nil

	case CollectionRefreshedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrSessionExpired) {
				return m, nil
			}
			return m, m.toast("could not load your pokemons: "+shortError(msg.Err), notify.SeverityError)
		}
		m.Caught.SetRecords(m.Collection.Index().Records())
		return m, nil

	case PokemonCaughtMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrSessionExpired) {
				return m, nil
			}
			return m, m.toast("could not catch "+msg.Name+": "+shortError(msg.Err), notify.SeverityError)
		}
		m.Caught.SetRecords(m.Collection.Index().Records())
		return m, m.toast("caught "+msg.Name+"!", notify.SeveritySuccess)

	case PokemonReleasedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrSessionExpired) {
				return m, nil
			}
			return m, m.toast("could not release "+msg.Name+": "+shortError(msg.Err), notify.SeverityError)
		}
		m.Caught.SetRecords(m.Collection.Index().Records())
		return m, m.toast("released "+msg.Name, notify.SeverityInfo)

	case AuthResultMsg:
		return m.handleAuthResult(msg)

	case SessionExpiredMsg:
		if m.view == ViewLogin {
			return m, nil
		}
		notice := "session expired, sign in again"
		if m.loggingOut {
			notice = "signed out"
			m.loggingOut = false
		}
		m.view = ViewLogin
		m.Login.Reset(notice)
		m.Browser = browser.New(m.Browser.PageSize())
		m.List.SetItems(nil)
		m.Caught.SetRecords(nil)
		return m, nil

	case TrainersLoadedMsg:
		m.Directory.SetTrainers(msg.Trainers)
		return m, nil

	case ToastExpiredMsg:
		m.Toasts.Dismiss(msg.ID)
		return m, nil

	case ErrMsg:
		if errors.Is(msg.Err, domain.ErrSessionExpired) {
			return m, nil
		}
		if m.Logger != nil {
			m.Logger.Error("background operation failed", "context", msg.Context, "error", msg.Err)
		}
		return m, m.toast(msg.Error(), notify.SeverityError)
	}

	return m, nil
}

func (m Model) handleAuthResult(msg AuthResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Login.SetBusy(false)
		m.Login.SetError(shortError(msg.Err))
		return m, nil
	}

	m.Session.Establish(*msg.Cred)
	m.view = ViewBrowse
	m.Login.SetBusy(false)

	greeting := "welcome back, " + msg.Cred.User.Name
	if msg.Registered {
		greeting = "account created, welcome " + msg.Cred.User.Name
	}
	return m, tea.Batch(
		m.toast(greeting, notify.SeveritySuccess),
		LoadPageCmd(m.Catalog, m.Browser.LoadFirst()),
		RefreshCollectionCmd(m.Collection),
		TickCmd(120*time.Millisecond),
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewCollection:
		return m.handleCollectionKey(msg)
	case ViewTrainers:
		return m.handleTrainersKey(msg)
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var sub *components.Submission
	m.Login, cmd, sub = m.Login.Update(msg)
	if sub == nil {
		return m, cmd
	}
	if sub.Register {
		return m, RegisterCmd(m.Auth, sub.Email, sub.Name, sub.Password)
	}
	return m, LoginCmd(m.Auth, sub.Email, sub.Password)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search bar and the inline filter capture keys when open.
	if m.Search.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.Search, cmd, submitted = m.Search.Update(msg)
		if !submitted {
			return m, cmd
		}
		req, ok := m.Browser.Search(m.Search.Value())
		m.Search.Hide()
		if !ok {
			// An empty submit while a search result is shown clears the
			// search and restores the default paged view.
			if m.Browser.InSearch() {
				m.List.SetItems(nil)
				return m, tea.Batch(
					LoadPageCmd(m.Catalog, m.Browser.LoadFirst()),
					TickCmd(120*time.Millisecond),
				)
			}
			return m, nil
		}
		m.List.SetItems(nil)
		return m, tea.Batch(SearchCmd(m.Catalog, req), TickCmd(120*time.Millisecond))
	}

	if m.List.Filtering() {
		switch msg.String() {
		case "enter":
			m.List.CommitFilter()
			return m, nil
		case "esc":
			m.List.StopFilter()
			return m, nil
		}
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.List.CursorUp()
		return m, nil

	case "down", "j":
		atEnd := m.List.CursorDown()
		if !atEnd {
			return m, nil
		}
		req, ok := m.Browser.LoadMore()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(LoadPageCmd(m.Catalog, req), TickCmd(120*time.Millisecond))

	case "s":
		m.Search.Show()
		return m, nil

	case "/":
		m.List.StartFilter()
		return m, nil

	case "esc":
		if m.Browser.InSearch() {
			return m, tea.Batch(
				LoadPageCmd(m.Catalog, m.Browser.LoadFirst()),
				TickCmd(120*time.Millisecond),
			)
		}
		return m, nil

	case "r":
		req, ok := m.Browser.Retry()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(LoadPageCmd(m.Catalog, req), TickCmd(120*time.Millisecond))

	case "c":
		p, ok := m.List.Selected()
		if !ok {
			return m, nil
		}
		if m.Collection.Index().Owned(p.ID) {
			return m, m.toast(p.Name+" is already in your pokedex", notify.SeverityInfo)
		}
		return m, CatchCmd(m.Collection, p)

	case "enter":
		p, ok := m.List.Selected()
		if !ok {
			return m, nil
		}
		return m, LoadDetailCmd(m.Catalog, p.Name)

	case "m":
		m.view = ViewCollection
		m.Caught.SetRecords(m.Collection.Index().Records())
		return m, RefreshCollectionCmd(m.Collection)

	case "t":
		m.view = ViewTrainers
		return m, LoadTrainersCmd(m.TrainerSvc)

	case "d":
		m.Toasts.DismissOldest()
		return m, nil

	case "ctrl+l":
		m.loggingOut = true
		m.Session.Invalidate()
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.view = m.detailFrom
		m.Detail = nil
		return m, nil

	case "c":
		if m.Detail == nil || m.Collection.Index().Owned(m.Detail.ID) {
			return m, nil
		}
		return m, CatchCmd(m.Collection, *m.Detail)

	case "d":
		m.Toasts.DismissOldest()
		return m, nil
	}
	return m, nil
}

func (m Model) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.Caught.CursorUp()
		m.confirmRelease = ""
		return m, nil

	case "down", "j":
		m.Caught.CursorDown()
		m.confirmRelease = ""
		return m, nil

	case "x":
		rec, ok := m.Caught.Selected()
		if !ok {
			return m, nil
		}
		if m.confirmRelease != rec.ID {
			m.confirmRelease = rec.ID
			return m, m.toast("press x again to release "+rec.Name, notify.SeverityInfo)
		}
		m.confirmRelease = ""
		return m, ReleaseCmd(m.Collection, rec)

	case "enter":
		rec, ok := m.Caught.Selected()
		if !ok {
			return m, nil
		}
		return m, LoadDetailCmd(m.Catalog, rec.Name)

	case "esc", "m":
		m.view = ViewBrowse
		m.confirmRelease = ""
		return m, nil

	case "t":
		m.view = ViewTrainers
		m.confirmRelease = ""
		return m, LoadTrainersCmd(m.TrainerSvc)

	case "d":
		m.Toasts.DismissOldest()
		return m, nil

	case "ctrl+l":
		m.loggingOut = true
		m.Session.Invalidate()
		return m, nil
	}
	return m, nil
}

func (m Model) handleTrainersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Directory.Filtering() {
		switch msg.String() {
		case "enter":
			m.Directory.CommitFilter()
			return m, nil
		case "esc":
			m.Directory.StopFilter()
			return m, nil
		}
		var cmd tea.Cmd
		m.Directory, cmd = m.Directory.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.Directory.CursorUp()
		return m, nil

	case "down", "j":
		m.Directory.CursorDown()
		return m, nil

	case "/":
		m.Directory.StartFilter()
		return m, nil

	case "enter":
		m.Directory.ToggleExpand()
		return m, nil

	case "esc":
		if m.Directory.Expanded() {
			m.Directory.ToggleExpand()
			return m, nil
		}
		m.view = ViewBrowse
		return m, nil

	case "t":
		m.view = ViewBrowse
		return m, nil

	case "m":
		m.view = ViewCollection
		m.Caught.SetRecords(m.Collection.Index().Records())
		return m, RefreshCollectionCmd(m.Collection)

	case "d":
		m.Toasts.DismissOldest()
		return m, nil
	}
	return m, nil
}

// toast enqueues a notification and schedules its expiry.
func (m *Model) toast(message string, severity notify.Severity) tea.Cmd {
	n := m.Toasts.Post(message, severity)
	return ExpireToastCmd(n.ID, m.Toasts.TTL())
}

func shortError(err error) string {
	switch {
	case errors.Is(err, domain.ErrServerOffline):
		return "server unreachable"
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	default:
		return err.Error()
	}
}
