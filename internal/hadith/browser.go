package hadith

import (
	"fmt"
	"strings"

	"github.com/deenlife/deenlife/internal/models"
)

// PageSize is the fixed number of items per page.
const PageSize = 10

// displayTarget is the generated list length per category: the seed
// set repeated with sequential reference identifiers.
const displayTarget = 500

// Browser holds the in-memory browsing state for one hadith session:
// active category, page, search filter, and translation overlays.
type Browser struct {
	category     string
	page         int
	search       string
	items        []models.Hadith
	translations map[string]string // "ref|language" -> translated text
}

// NewBrowser starts a session on the first category.
func NewBrowser() *Browser {
	b := &Browser{}
	b.SetCategory(Categories[0].ID)
	return b
}

// Category returns the active category id.
func (b *Browser) Category() string {
	return b.category
}

// SetCategory switches the active category. The page resets to 1, the
// search filter clears, and translation overlays for the previous
// category are dropped.
func (b *Browser) SetCategory(id string) {
	b.category = id
	b.page = 1
	b.search = ""
	b.translations = map[string]string{}
	b.items = Generate(id)
}

// Generate produces the deterministic browsable list for a category by
// cycling its seeds up to the display target. Unknown ids fall back to
// the first category's seeds. Reference ids are "PRE-1000"..; the
// prefix is the first three letters of the category id, uppercased.
func Generate(categoryID string) []models.Hadith {
	seeds, ok := seedHadiths[categoryID]
	if !ok || len(seeds) == 0 {
		seeds = seedHadiths[Categories[0].ID]
	}

	prefix := strings.ToUpper(categoryID)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	out := make([]models.Hadith, 0, displayTarget)
	for i := 0; i < displayTarget; i++ {
		s := seeds[i%len(seeds)]
		out = append(out, models.Hadith{
			RefNumber: fmt.Sprintf("%s-%d", prefix, 1000+i),
			Category:  categoryID,
			Text:      s.Text,
			Arabic:    s.Arabic,
			Source:    s.Source,
		})
	}
	return out
}

// Search returns the active search term.
func (b *Browser) Search() string {
	return b.search
}

// SetSearch replaces the filter and returns to the first page.
func (b *Browser) SetSearch(term string) {
	b.search = term
	b.page = 1
}

// filtered applies the search: case-insensitive over text and source,
// exact substring over the Arabic field.
func (b *Browser) filtered() []models.Hadith {
	if b.search == "" {
		return b.items
	}
	lower := strings.ToLower(b.search)
	var out []models.Hadith
	for _, h := range b.items {
		if strings.Contains(strings.ToLower(h.Text), lower) ||
			strings.Contains(strings.ToLower(h.Source), lower) ||
			strings.Contains(h.Arabic, b.search) {
			out = append(out, h)
		}
	}
	return out
}

// TotalPages reports the page count over the filtered result, at
// least 1 even when the filter matches nothing.
func (b *Browser) TotalPages() int {
	n := (len(b.filtered()) + PageSize - 1) / PageSize
	if n < 1 {
		n = 1
	}
	return n
}

// CurrentPage returns the page number after clamping.
func (b *Browser) CurrentPage() int {
	return b.clampedPage()
}

// SetPage requests a page; out-of-range values clamp to the valid
// interval.
func (b *Browser) SetPage(page int) {
	b.page = page
}

// NextPage advances one page, clamped at the end.
func (b *Browser) NextPage() {
	b.page = b.clampedPage() + 1
}

// PrevPage steps back one page, clamped at 1.
func (b *Browser) PrevPage() {
	b.page = b.clampedPage() - 1
}

func (b *Browser) clampedPage() int {
	page := b.page
	if last := b.TotalPages(); page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Page returns the items of the current page of the filtered result.
func (b *Browser) Page() []models.Hadith {
	filtered := b.filtered()
	page := b.clampedPage()
	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// FilteredCount reports how many items match the active search.
func (b *Browser) FilteredCount() int {
	return len(b.filtered())
}

func translationKey(refNumber, language string) string {
	return refNumber + "|" + language
}

// SetTranslation stores a translation overlay for one hadith and
// language within the current category session.
func (b *Browser) SetTranslation(refNumber, language, text string) {
	b.translations[translationKey(refNumber, language)] = text
}

// Translation returns the overlay for the hadith and language, if any.
func (b *Browser) Translation(refNumber, language string) (string, bool) {
	text, ok := b.translations[translationKey(refNumber, language)]
	return text, ok
}

// ClearTranslation removes one overlay, reverting that hadith to its
// original text.
func (b *Browser) ClearTranslation(refNumber, language string) {
	delete(b.translations, translationKey(refNumber, language))
}

// TranslationLanguages offered by the browser.
var TranslationLanguages = []string{
	"English", "Urdu", "Indonesian", "Turkish", "French", "Spanish",
	"Hindi", "Bengali", "Russian", "German", "Malay", "Chinese", "Persian",
}
