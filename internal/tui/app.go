package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deenlife/deenlife/internal/alquran"
	"github.com/deenlife/deenlife/internal/assistant"
	"github.com/deenlife/deenlife/internal/config"
	"github.com/deenlife/deenlife/internal/dua"
	"github.com/deenlife/deenlife/internal/habits"
	"github.com/deenlife/deenlife/internal/hadith"
	"github.com/deenlife/deenlife/internal/llm"
	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/prayer"
	"github.com/deenlife/deenlife/internal/quran"
	"github.com/deenlife/deenlife/internal/store"
)

// Tab identifies the active view.
type Tab int

const (
	TabHome Tab = iota
	TabHabits
	TabQuran
	TabHadith
	TabDua
	TabPrayer
	TabQibla
	TabAssistant
)

var tabNames = []string{"Home", "Habits", "Quran", "Hadith", "Dua", "Prayer", "Qibla", "Assistant"}

// chatLine is one rendered turn of the assistant transcript.
type chatLine struct {
	role string
	text string
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	store  *store.Store
	keymap Keymap
	styles Styles

	tab      Tab
	width    int
	height   int
	quitting bool

	// Habits
	habitsTracker *habits.Tracker
	habitList     []models.Habit
	habitCursor   int
	habitInput    textinput.Model
	addingHabit   bool

	// Quran
	quranTracker   *quran.Tracker
	surahs         []models.Surah
	surahFiltered  []models.Surah
	surahCursor    int
	surahSearch    textinput.Model
	searchingSurah bool
	loadingSurahs  bool
	quranErr       error

	// Hadith
	browser      *hadith.Browser
	favorites    *hadith.Favorites
	catCursor    int
	inCategory   bool
	hadithCursor int
	hadithSearch textinput.Model
	searchingHad bool

	// Dua
	duaList      []dua.Dua
	duaCursor    int
	duaSearch    textinput.Model
	searchingDua bool

	// Prayer and Qibla
	location  prayer.Location
	schedule  *prayer.Schedule
	prayerErr error

	// Assistant
	session    *assistant.Session
	chatInput  textinput.Model
	transcript []chatLine
	llmErr     error
	thinking   bool
	spinner    spinner.Model
}

// Messages.
type surahsMsg struct {
	surahs []models.Surah
	err    error
}

type chatReplyMsg struct {
	reply string
	err   error
}

type minuteTickMsg time.Time

// NewModel builds the TUI model. Everything local loads synchronously;
// the surah index and assistant replies arrive as messages.
func NewModel(ctx context.Context, cfg *config.Config, s *store.Store) Model {
	CurrentTheme = ThemeByName(cfg.Theme)
	styles := DefaultStyles()

	habitInput := textinput.New()
	habitInput.Placeholder = "habit name"
	habitInput.CharLimit = 80

	surahSearch := textinput.New()
	surahSearch.Placeholder = "search surahs"

	hadithSearch := textinput.New()
	hadithSearch.Placeholder = "search hadiths"

	duaSearch := textinput.New()
	duaSearch.Placeholder = "search duas"

	chatInput := textinput.New()
	chatInput.Placeholder = "ask about your Deen"
	chatInput.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusInfo

	m := Model{
		ctx:           ctx,
		cfg:           cfg,
		store:         s,
		keymap:        DefaultKeymap(),
		styles:        styles,
		habitsTracker: habits.NewTracker(s),
		quranTracker:  quran.NewTracker(s),
		browser:       hadith.NewBrowser(),
		favorites:     hadith.NewFavorites(s),
		habitInput:    habitInput,
		surahSearch:   surahSearch,
		hadithSearch:  hadithSearch,
		duaSearch:     duaSearch,
		chatInput:     chatInput,
		spinner:       sp,
		duaList:       dua.All(),
	}

	m.habitList = m.habitsTracker.List()

	m.location = resolveLocation(cfg, s)
	sched, err := prayer.NewSchedule(m.location.Coords, time.Now())
	if err != nil {
		m.prayerErr = err
	} else {
		m.schedule = sched
	}

	if provider, err := llm.NewProvider(cfg.LLM); err != nil {
		m.llmErr = err
	} else {
		m.session = assistant.NewSession(provider)
		m.transcript = append(m.transcript, chatLine{role: "assistant", text: assistant.WelcomeText})
	}

	if cached, ok := m.quranTracker.CachedSurahs(); ok {
		m.surahs = cached
		m.surahFiltered = cached
	} else {
		m.loadingSurahs = true
	}

	return m
}

// resolveLocation applies the location priority: environment override,
// then saved location, then the Mecca fallback.
func resolveLocation(cfg *config.Config, s *store.Store) prayer.Location {
	if cfg.Location.Set {
		return prayer.Location{Coords: models.Coordinates{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		}}
	}
	return prayer.ResolveLocation(prayer.StoredResolver{Store: s})
}

// Run starts the TUI and blocks until it exits.
func Run(ctx context.Context, cfg *config.Config, s *store.Store) error {
	p := tea.NewProgram(NewModel(ctx, cfg, s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, minuteTick()}
	if m.loadingSurahs {
		cmds = append(cmds, m.loadSurahs())
	}
	return tea.Batch(cmds...)
}

func (m Model) loadSurahs() tea.Cmd {
	cfg := m.cfg
	tracker := m.quranTracker
	ctx := m.ctx
	return func() tea.Msg {
		ccfg := alquran.DefaultConfig()
		ccfg.BaseURL = cfg.Quran.BaseURL
		ccfg.MaxRetries = cfg.Quran.MaxRetries

		surahs, err := alquran.NewClient(ccfg).ListSurahs(ctx)
		if err != nil {
			return surahsMsg{err: err}
		}
		if err := tracker.CacheSurahs(surahs); err != nil {
			return surahsMsg{err: err}
		}
		return surahsMsg{surahs: surahs}
	}
}

func (m Model) sendChat(text string) tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		reply, err := session.Ask(ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func minuteTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return minuteTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case surahsMsg:
		m.loadingSurahs = false
		if msg.err != nil {
			m.quranErr = msg.err
			return m, nil
		}
		m.quranErr = nil
		m.surahs = msg.surahs
		m.surahFiltered = msg.surahs
		return m, nil

	case chatReplyMsg:
		m.thinking = false
		if msg.err != nil {
			m.transcript = append(m.transcript, chatLine{
				role: "error",
				text: "I'm having trouble connecting right now. Please check your internet or try again later.",
			})
			return m, nil
		}
		m.transcript = append(m.transcript, chatLine{role: "assistant", text: msg.reply})
		return m, nil

	case minuteTickMsg:
		// Recalculate so the next-prayer marker stays current.
		if sched, err := prayer.NewSchedule(m.location.Coords, time.Time(msg)); err == nil {
			m.schedule = sched
			m.prayerErr = nil
		}
		return m, minuteTick()

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keys to the text input when one is capturing, then
// to global bindings, then to the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputCapturing() {
		return m.updateCapturedInput(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = Tab((int(m.tab) + 1) % len(tabNames))
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = Tab((int(m.tab) + len(tabNames) - 1) % len(tabNames))
		return m, nil
	}

	// Number keys jump straight to a tab.
	if len(msg.String()) == 1 && msg.String()[0] >= '1' && msg.String()[0] <= '8' {
		m.tab = Tab(msg.String()[0] - '1')
		return m, nil
	}

	switch m.tab {
	case TabHabits:
		return m.updateHabits(msg)
	case TabQuran:
		return m.updateQuran(msg)
	case TabHadith:
		return m.updateHadith(msg)
	case TabDua:
		return m.updateDua(msg)
	case TabAssistant:
		return m.updateAssistant(msg)
	}
	return m, nil
}

func (m Model) inputCapturing() bool {
	return m.addingHabit || m.searchingSurah || m.searchingHad || m.searchingDua ||
		(m.tab == TabAssistant && m.chatInput.Focused())
}

// updateCapturedInput feeds keys to whichever input is active. Esc
// cancels, enter commits.
func (m Model) updateCapturedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addingHabit = false
		m.searchingSurah = false
		m.searchingHad = false
		m.searchingDua = false
		m.habitInput.Blur()
		m.surahSearch.Blur()
		m.hadithSearch.Blur()
		m.duaSearch.Blur()
		m.chatInput.Blur()
		return m, nil

	case "enter":
		return m.commitInput()
	}

	var cmd tea.Cmd
	switch {
	case m.addingHabit:
		m.habitInput, cmd = m.habitInput.Update(msg)
	case m.searchingSurah:
		m.surahSearch, cmd = m.surahSearch.Update(msg)
		m.surahFiltered = quran.SearchSurahs(m.surahs, m.surahSearch.Value())
		m.surahCursor = 0
	case m.searchingHad:
		m.hadithSearch, cmd = m.hadithSearch.Update(msg)
		m.browser.SetSearch(m.hadithSearch.Value())
		m.hadithCursor = 0
	case m.searchingDua:
		m.duaSearch, cmd = m.duaSearch.Update(msg)
		m.duaList = dua.Search(m.duaSearch.Value())
		m.duaCursor = 0
	default:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

func (m Model) commitInput() (tea.Model, tea.Cmd) {
	switch {
	case m.addingHabit:
		name := m.habitInput.Value()
		m.addingHabit = false
		m.habitInput.Blur()
		m.habitInput.SetValue("")
		if _, err := m.habitsTracker.Add(name); err == nil {
			m.habitList = m.habitsTracker.List()
			m.habitCursor = len(m.habitList) - 1
		}
		return m, nil

	case m.searchingSurah:
		m.searchingSurah = false
		m.surahSearch.Blur()
		return m, nil

	case m.searchingHad:
		m.searchingHad = false
		m.hadithSearch.Blur()
		return m, nil

	case m.searchingDua:
		m.searchingDua = false
		m.duaSearch.Blur()
		return m, nil
	}

	// Assistant input.
	text := m.chatInput.Value()
	if text == "" || m.thinking || m.session == nil {
		return m, nil
	}
	m.chatInput.SetValue("")
	m.transcript = append(m.transcript, chatLine{role: "user", text: text})
	m.thinking = true
	return m, tea.Batch(m.sendChat(text), m.spinner.Tick)
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.habitCursor < len(m.habitList)-1 {
			m.habitCursor++
		}
	case key.Matches(msg, m.keymap.New):
		m.addingHabit = true
		m.habitInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keymap.Delete):
		if m.habitCursor < len(m.habitList) {
			_ = m.habitsTracker.Remove(m.habitList[m.habitCursor].ID)
			m.habitList = m.habitsTracker.List()
			if m.habitCursor >= len(m.habitList) && m.habitCursor > 0 {
				m.habitCursor--
			}
		}
	case key.Matches(msg, m.keymap.Select):
		if m.habitCursor < len(m.habitList) {
			_ = m.habitsTracker.Toggle(m.habitList[m.habitCursor].ID)
			m.habitList = m.habitsTracker.List()
		}
	}
	return m, nil
}

func (m Model) updateQuran(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.surahCursor > 0 {
			m.surahCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.surahCursor < len(m.surahFiltered)-1 {
			m.surahCursor++
		}
	case key.Matches(msg, m.keymap.Search):
		m.searchingSurah = true
		m.surahSearch.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keymap.Select):
		if m.surahCursor < len(m.surahFiltered) {
			su := m.surahFiltered[m.surahCursor]
			_ = m.quranTracker.ToggleCompleted(su.Number)
			// Finishing a surah moves the resume pointer; unmarking one
			// does not.
			if m.quranTracker.IsCompleted(su.Number) {
				_ = m.quranTracker.RecordLastRead(su.Number, su.EnglishName)
			}
		}
	case msg.String() == "r" && m.quranErr != nil:
		m.loadingSurahs = true
		m.quranErr = nil
		return m, m.loadSurahs()
	}
	return m, nil
}

func (m Model) updateHadith(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.inCategory {
		switch {
		case key.Matches(msg, m.keymap.Up):
			if m.catCursor > 0 {
				m.catCursor--
			}
		case key.Matches(msg, m.keymap.Down):
			if m.catCursor < len(hadith.Categories)-1 {
				m.catCursor++
			}
		case key.Matches(msg, m.keymap.Select):
			m.browser.SetCategory(hadith.Categories[m.catCursor].ID)
			m.hadithSearch.SetValue("")
			m.inCategory = true
			m.hadithCursor = 0
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.inCategory = false
	case key.Matches(msg, m.keymap.Up):
		if m.hadithCursor > 0 {
			m.hadithCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.hadithCursor < len(m.browser.Page())-1 {
			m.hadithCursor++
		}
	case key.Matches(msg, m.keymap.PrevPage):
		m.browser.PrevPage()
		m.hadithCursor = 0
	case key.Matches(msg, m.keymap.NextPage):
		m.browser.NextPage()
		m.hadithCursor = 0
	case key.Matches(msg, m.keymap.Search):
		m.searchingHad = true
		m.hadithSearch.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keymap.Fav):
		page := m.browser.Page()
		if m.hadithCursor < len(page) {
			_ = m.favorites.Toggle(page[m.hadithCursor])
		}
	}
	return m, nil
}

func (m Model) updateDua(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.duaCursor > 0 {
			m.duaCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.duaCursor < len(m.duaList)-1 {
			m.duaCursor++
		}
	case key.Matches(msg, m.keymap.Search):
		m.searchingDua = true
		m.duaSearch.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	// Any key starts typing; the captured-input path takes over once
	// the input has focus.
	m.chatInput.Focus()
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, tea.Batch(cmd, textinput.Blink)
}

// nextPrayerLine formats the upcoming prayer for the header and the
// home view.
func (m Model) nextPrayerLine() string {
	if m.schedule == nil {
		return ""
	}
	next, err := m.schedule.NextPrayer(time.Now())
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s at %s", next.Name, next.Time.Format("15:04"))
}
