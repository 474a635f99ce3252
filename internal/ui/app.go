package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/prefs"
	"github.com/five82/memoix/internal/state"
	"github.com/five82/memoix/internal/transport"
)

// View represents the current active view.
type View int

const (
	ViewRecipes View = iota
	ViewActivity
)

// Snapshotter hands out the current record list. *state.Store satisfies it.
type Snapshotter interface {
	Snapshot() state.Snapshot
}

// Collection is the subset of the store the UI mutates.
type Collection interface {
	SetFavorite(ctx context.Context, uuid string, favorite bool) error
	RecordCook(ctx context.Context, uuid string) error
}

// LinkDispatcher imports share links. *deeplink.Controller satisfies it.
type LinkDispatcher interface {
	Dispatch(ctx context.Context, link string) (model.Record, error)
}

// Clipboard is satisfied by *transport.Clipboard.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Snapshots  Snapshotter
	Collection Collection
	Links      LinkDispatcher
	Clipboard  Clipboard
	LogPath    string
	PollTick   time.Duration
	Prefs      prefs.Prefs
	PrefsPath  string
	Refresh    func() // asks the background refresher for a new snapshot
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	snaps     Snapshotter
	coll      Collection
	links     LinkDispatcher
	clip      Clipboard
	qr        transport.QRRenderer
	logPath   string
	pollTick  time.Duration
	prefs     prefs.Prefs
	prefsPath string
	refresh   func()

	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = list, 1 = detail

	snapshot    state.Snapshot
	lastUpdated time.Time

	selectedRow   int
	kindFilter    model.Kind
	favoritesOnly bool
	pendingSelect string // uuid to select once it shows up in a snapshot

	detailViewport viewport.Model
	detail         *detailCache

	activityViewport viewport.Model
	activity         activityState

	modal    Modal
	showHelp bool
	flash    flash
}

// flash is a transient footer message.
type flash struct {
	text    string
	isError bool
	until   time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	refresh := opts.Refresh
	if refresh == nil {
		refresh = func() {}
	}
	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Defaults()
	}

	return Model{
		ctx:           ctx,
		snaps:         opts.Snapshots,
		coll:          opts.Collection,
		links:         opts.Links,
		clip:          opts.Clipboard,
		logPath:       opts.LogPath,
		pollTick:      pollTick,
		prefs:         p,
		prefsPath:     opts.PrefsPath,
		refresh:       refresh,
		keys:          DefaultKeyMap(),
		theme:         GetTheme(p.Theme),
		currentView:   ViewRecipes,
		kindFilter:    p.KindFilter(),
		favoritesOnly: p.FavoritesOnly,
		detail:        &detailCache{},

		detailViewport:   viewport.New(0, 0),
		activityViewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.snaps != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.snaps))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDetailViewport()
		m.updateActivityViewport()
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case activityMsg:
		m.activity.entries = msg.entries
		m.activity.err = msg.err
		m.activity.loaded = true
		m.updateActivityViewport()
		return m, nil

	case flashMsg:
		m.setFlash(msg.text, msg.isError)
		if msg.changed {
			m.refresh()
		}
		return m, nil

	case clipboardTextMsg:
		m.modal = newImportModal(msg.text)
		return m, nil

	case importRequestMsg:
		return m, importCmd(m.ctx, m.links, msg.link)

	case importResultMsg:
		m.handleImportResult(msg)
		return m, nil

	case openQRMsg:
		m.modal = newQRModal(m.qr, msg.rec)
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, done := m.modal.Update(msg, m.keys)
	if done {
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

// handleKey processes keyboard input outside of modals.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.detail.invalidate()
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.currentView = ViewActivity
		return m, loadActivityCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewRecipes
		m.focusedPane = 0
		return m, nil
	}

	switch m.currentView {
	case ViewActivity:
		return m.handleActivityKey(msg)
	default:
		return m.handleRecipesKey(msg)
	}
}

// handleRecipesKey processes keyboard input for the list/detail view.
func (m Model) handleRecipesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.focusedPane = 1 - m.focusedPane
		return m, nil

	case key.Matches(msg, m.keys.CycleKind):
		m.kindFilter = nextKind(m.kindFilter)
		m.prefs.Filter = string(m.kindFilter)
		m.savePrefs()
		m.selectedRow = 0
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.favoritesOnly = !m.favoritesOnly
		m.prefs.FavoritesOnly = m.favoritesOnly
		m.savePrefs()
		m.selectedRow = 0
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.Import):
		return m, readClipboardCmd(m.clip)
	}

	rec := m.selectedRecord()
	if rec != nil {
		switch {
		case key.Matches(msg, m.keys.ToggleFavorite):
			return m, favoriteCmd(m.ctx, m.coll, rec)
		case key.Matches(msg, m.keys.MarkCooked):
			return m, cookedCmd(m.ctx, m.coll, rec)
		case key.Matches(msg, m.keys.CopyLink):
			return m, copyLinkCmd(m.clip, rec)
		case key.Matches(msg, m.keys.CopyText):
			return m, copyTextCmd(m.clip, rec)
		case key.Matches(msg, m.keys.Share):
			m.modal = newShareModal(m.clip, rec)
			return m, nil
		case key.Matches(msg, m.keys.ShowQR):
			m.modal = newQRModal(m.qr, rec)
			return m, nil
		}
	}

	if m.focusedPane == 1 {
		m.scrollViewport(&m.detailViewport, msg)
		return m, nil
	}
	m.moveSelection(msg)
	return m, nil
}

// handleTick refreshes the snapshot and, in the activity view, the log.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.snaps != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.snaps))
	}
	if m.currentView == ViewActivity {
		cmds = append(cmds, loadActivityCmd(m.logPath))
	}
	if !m.flash.until.IsZero() && now.After(m.flash.until) {
		m.flash = flash{}
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	selected := ""
	if rec := m.selectedRecord(); rec != nil {
		selected = rec.Ref().UUID
	}

	m.snapshot = snap
	m.lastUpdated = time.Now()

	if m.pendingSelect != "" {
		if m.selectUUID(m.pendingSelect) {
			m.pendingSelect = ""
		} else if _, ok := snap.Find(m.pendingSelect); ok {
			// Present but hidden by the current filter.
			m.pendingSelect = ""
			m.selectUUID(selected)
		}
	} else if selected != "" {
		m.selectUUID(selected)
	}
	m.clampSelection()
	m.updateDetailViewport()
}

func (m *Model) setFlash(text string, isError bool) {
	m.flash = flash{text: text, isError: isError, until: time.Now().Add(FlashDuration)}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.setFlash("Could not save preferences", true)
	}
}

func (m *Model) scrollViewport(vp *viewport.Model, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Down):
		vp.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfViewUp()
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	}
}

// renderMain renders header, command bar, content and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.currentView {
	case ViewActivity:
		b.WriteString(m.renderActivity())
	default:
		b.WriteString(m.renderRecipes())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(s Snapshotter) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(s.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, teaOpts...).Run()
	return err
}
