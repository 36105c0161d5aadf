package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/deenlife/deenlife/internal/habits"
	"github.com/deenlife/deenlife/internal/hadith"
	"github.com/deenlife/deenlife/internal/qibla"
	"github.com/deenlife/deenlife/internal/quran"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.tab {
	case TabHome:
		b.WriteString(m.viewHome())
	case TabHabits:
		b.WriteString(m.viewHabits())
	case TabQuran:
		b.WriteString(m.viewQuran())
	case TabHadith:
		b.WriteString(m.viewHadith())
	case TabDua:
		b.WriteString(m.viewDua())
	case TabPrayer:
		b.WriteString(m.viewPrayer())
	case TabQibla:
		b.WriteString(m.viewQibla())
	case TabAssistant:
		b.WriteString(m.viewAssistant())
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render(m.keymap.FooterText()))
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			tabs[i] = m.styles.TabActive.Render(label)
		} else {
			tabs[i] = m.styles.TabInactive.Render(label)
		}
	}
	title := m.styles.HeaderTitle.Render("DeenLife")
	return m.styles.Header.Render(title + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) viewHome() string {
	var b strings.Builder

	done, total := m.habitsTracker.TodayStats()
	b.WriteString(m.styles.Bold.Render(time.Now().Format("Monday, January 2")))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Habits today      %s\n",
		m.styles.Highlight.Render(fmt.Sprintf("%d/%d", done, total))))
	b.WriteString(fmt.Sprintf("  Quran progress    %s\n",
		m.styles.Highlight.Render(fmt.Sprintf("%.0f%%", m.quranTracker.ProgressPercent()))))

	if last, ok := m.quranTracker.LastRead(); ok {
		b.WriteString(fmt.Sprintf("  Last read         surah %d (%s)\n", last.SurahNumber, last.SurahName))
	}
	if line := m.nextPrayerLine(); line != "" {
		b.WriteString(fmt.Sprintf("  Next prayer       %s\n", m.styles.StatusOK.Render(line)))
	}
	b.WriteString(fmt.Sprintf("  Hadith favorites  %d\n", len(m.favorites.List())))

	if m.location.UsingDefault {
		b.WriteString("\n" + m.styles.Muted.Render("  Prayer times use the Mecca fallback; set a location with 'deenlife prayer set-location'."))
	}
	return b.String()
}

func (m Model) viewHabits() string {
	var b strings.Builder

	if m.addingHabit {
		b.WriteString("New habit: " + m.habitInput.View() + "\n\n")
	}

	if len(m.habitList) == 0 && !m.addingHabit {
		b.WriteString(m.styles.Muted.Render("No habits yet. Press n to create one."))
		b.WriteString("\n\n" + m.styles.Normal.Render("Some ideas:") + "\n")
		for _, name := range habits.Suggested {
			b.WriteString(m.styles.Muted.Render("  • "+name) + "\n")
		}
		return b.String()
	}

	today := time.Now().Format("2006-01-02")
	for i, h := range m.habitList {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = m.styles.StatusOK.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", mark, h.Name)
		if i == m.habitCursor {
			b.WriteString(m.styles.ListItemSelected.Render(line))
		} else {
			b.WriteString(m.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.styles.Bold.Render("This week") + "\n")
	for _, day := range m.habitsTracker.WeeklyHistogram(time.Now()) {
		b.WriteString(fmt.Sprintf("  %s %s %d\n", day.Label, strings.Repeat("█", day.Count), day.Count))
	}
	b.WriteString("\n" + m.styles.Muted.Render("n new • d delete • enter toggle"))
	return b.String()
}

func (m Model) viewQuran() string {
	var b strings.Builder

	if m.loadingSurahs {
		return m.styles.Muted.Render("Fetching surah index...")
	}
	if m.quranErr != nil {
		return m.styles.StatusError.Render("Could not fetch the surah index.") + "\n" +
			m.styles.Muted.Render("Press r to retry.")
	}

	b.WriteString(fmt.Sprintf("Progress: %s\n", m.styles.Highlight.Render(
		fmt.Sprintf("%.0f%% of %d surahs", m.quranTracker.ProgressPercent(), quran.TotalSurahs))))
	if m.searchingSurah {
		b.WriteString("Search: " + m.surahSearch.View() + "\n")
	}
	b.WriteString("\n")

	start, end := window(m.surahCursor, len(m.surahFiltered), m.listHeight())
	for i := start; i < end; i++ {
		su := m.surahFiltered[i]
		mark := "[ ]"
		if m.quranTracker.IsCompleted(su.Number) {
			mark = m.styles.StatusOK.Render("[x]")
		}
		line := fmt.Sprintf("%s %3d. %s — %s", mark, su.Number, su.EnglishName, su.EnglishNameTranslation)
		if i == m.surahCursor {
			b.WriteString(m.styles.ListItemSelected.Render(line))
		} else {
			b.WriteString(m.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.styles.Muted.Render("/ search • enter mark read"))
	return b.String()
}

func (m Model) viewHadith() string {
	var b strings.Builder

	if !m.inCategory {
		start, end := window(m.catCursor, len(hadith.Categories), m.listHeight())
		for i := start; i < end; i++ {
			c := hadith.Categories[i]
			if i == m.catCursor {
				b.WriteString(m.styles.ListItemSelected.Render(c.Title))
			} else {
				b.WriteString(m.styles.ListItem.Render(c.Title))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n" + m.styles.Muted.Render("enter open category"))
		return b.String()
	}

	b.WriteString(m.styles.Bold.Render(hadith.TitleFor(m.browser.Category())))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  page %d/%d (%d hadiths)",
		m.browser.CurrentPage(), m.browser.TotalPages(), m.browser.FilteredCount())))
	b.WriteString("\n")
	if m.searchingHad {
		b.WriteString("Search: " + m.hadithSearch.View() + "\n")
	}
	b.WriteString("\n")

	page := m.browser.Page()
	if len(page) == 0 {
		b.WriteString(m.styles.Muted.Render("No hadiths match."))
		return b.String()
	}

	for i, h := range page {
		fav := " "
		if m.favorites.IsFavorite(h.RefNumber) {
			fav = m.styles.Highlight.Render("★")
		}
		line := fmt.Sprintf("%s [%s] %s", fav, h.RefNumber, truncate(h.Text, m.bodyWidth()-16))
		if i == m.hadithCursor {
			detail := m.styles.Normal.Render(line) + "\n" +
				m.styles.Arabic.Render(h.Arabic) + "\n" +
				m.styles.Muted.Render("— "+h.Source)
			b.WriteString(m.styles.SelectedBox.Width(m.bodyWidth()).Render(detail))
			b.WriteString("\n")
		} else {
			b.WriteString(m.styles.ListItem.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + m.styles.Muted.Render("←/→ page • / search • f favorite • esc categories"))
	return b.String()
}

func (m Model) viewDua() string {
	var b strings.Builder

	if m.searchingDua {
		b.WriteString("Search: " + m.duaSearch.View() + "\n\n")
	}
	if len(m.duaList) == 0 {
		b.WriteString(m.styles.Muted.Render("No duas match."))
		return b.String()
	}
	cursor := m.duaCursor
	if cursor >= len(m.duaList) {
		cursor = 0
	}

	start, end := window(cursor, len(m.duaList), m.listHeight())
	for i := start; i < end; i++ {
		d := m.duaList[i]
		if i == cursor {
			b.WriteString(m.styles.ListItemSelected.Render(d.Category))
		} else {
			b.WriteString(m.styles.ListItem.Render(d.Category))
		}
		b.WriteString("\n")
	}

	d := m.duaList[cursor]
	detail := m.styles.Arabic.Render(d.Arabic) + "\n" +
		m.styles.Normal.Render(d.Transliteration) + "\n" +
		m.styles.Normal.Render(d.Translation) + "\n" +
		m.styles.Muted.Render(d.Source)
	b.WriteString("\n" + m.styles.Box.Width(m.bodyWidth()).Render(detail))
	return b.String()
}

func (m Model) viewPrayer() string {
	if m.prayerErr != nil {
		return m.styles.StatusError.Render("Prayer times unavailable: " + m.prayerErr.Error())
	}
	if m.schedule == nil {
		return m.styles.Muted.Render("Calculating...")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%.4f, %.4f)\n\n",
		m.styles.Bold.Render(time.Now().Format("Monday, January 2")),
		m.location.Coords.Latitude, m.location.Coords.Longitude))

	next, _ := m.schedule.NextPrayer(time.Now())
	for _, ev := range m.schedule.Times.Ordered() {
		line := fmt.Sprintf("  %-8s %s", ev.Name, ev.Time.Format("15:04"))
		if ev.Name == next.Name && ev.Time.Equal(next.Time) {
			b.WriteString(m.styles.StatusOK.Render("▸"+line) + "\n")
		} else {
			b.WriteString(m.styles.Normal.Render(" "+line) + "\n")
		}
	}

	b.WriteString("\n" + m.styles.Muted.Render("Muslim World League • Shafi"))
	if m.location.UsingDefault {
		b.WriteString("\n" + m.styles.StatusWarning.Render("Using default location (Mecca)."))
	}
	return b.String()
}

func (m Model) viewQibla() string {
	var b strings.Builder

	bearing := qibla.Bearing(m.location.Coords)
	b.WriteString(fmt.Sprintf("Qibla direction: %s\n\n",
		m.styles.Highlight.Render(fmt.Sprintf("%.1f° from true north", bearing))))
	b.WriteString(m.styles.Muted.Render(compassLine(bearing)))

	if m.location.UsingDefault {
		b.WriteString("\n\n" + m.styles.StatusWarning.Render("Using default location (Mecca); set your own for a meaningful bearing."))
	}
	return b.String()
}

func (m Model) viewAssistant() string {
	if m.session == nil {
		return m.styles.StatusWarning.Render("Assistant not configured.") + "\n" +
			m.styles.Muted.Render("Set ANTHROPIC_API_KEY or OPENAI_API_KEY and restart.")
	}

	var b strings.Builder
	shown := m.transcript
	if limit := m.listHeight() / 3; limit > 0 && len(shown) > limit {
		shown = shown[len(shown)-limit:]
	}
	for _, line := range shown {
		switch line.role {
		case "user":
			b.WriteString(m.styles.Bold.Render("You: ") + line.text + "\n")
		case "error":
			b.WriteString(m.styles.StatusError.Render(line.text) + "\n")
		default:
			b.WriteString(RenderMarkdown(line.text, m.bodyWidth()) + "\n")
		}
		b.WriteString("\n")
	}

	if m.thinking {
		b.WriteString(m.spinner.View() + m.styles.Muted.Render(" thinking...") + "\n")
	}
	b.WriteString("\n> " + m.chatInput.View())
	return b.String()
}

// listHeight is the number of list rows that fit the current terminal.
func (m Model) listHeight() int {
	h := m.height - 12
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) bodyWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - 4
}

// window returns the slice bounds keeping cursor visible in a list of
// size rows.
func window(cursor, length, size int) (int, int) {
	if length <= size {
		return 0, length
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > length {
		start = length - size
	}
	return start, start + size
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// compassLine renders a coarse sixteen-point compass hint.
func compassLine(bearing float64) string {
	points := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	idx := int((bearing+11.25)/22.5) % len(points)
	return "Face " + points[idx]
}
