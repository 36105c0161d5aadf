// Package hadith implements the browsable hadith collection: a fixed
// category list, a seed-cycled generated item list with search and
// pagination, translation overlays, and persistent favorites.
package hadith

// Category pairs a stable id with its display title.
type Category struct {
	ID    string
	Title string
}

// Categories is the fixed browsing taxonomy.
var Categories = []Category{
	{"intentions", "Intentions"},
	{"character", "Good Character"},
	{"prayer", "Prayer (Salah)"},
	{"charity", "Charity (Sadaqah)"},
	{"patience", "Patience (Sabr)"},
	{"knowledge", "Knowledge"},
	{"truthfulness", "Truthfulness"},
	{"parents", "Parents"},
	{"neighbours", "Neighbours"},
	{"forgiveness", "Forgiveness"},
	{"mercy", "Mercy"},
	{"justice", "Justice"},
	{"health", "Health"},
	{"death", "Remembering Death"},
	{"paradise", "Paradise (Jannah)"},
	{"hellfire", "Hellfire (Jahannam)"},
	{"fasting", "Fasting (Sawm)"},
	{"hajj", "Hajj & Umrah"},
	{"zakat", "Zakat"},
	{"marriage", "Marriage"},
	{"family", "Family Ties"},
	{"friendship", "Friendship"},
	{"cleanliness", "Cleanliness"},
	{"modesty", "Modesty (Haya)"},
	{"gratitude", "Gratitude (Shukr)"},
	{"tawakkul", "Trust in Allah"},
	{"quran", "Quran"},
	{"prophethood", "Prophethood"},
	{"angels", "Angels"},
	{"judgment", "Day of Judgment"},
	{"dua", "Supplication (Dua)"},
	{"dhikr", "Remembrance (Dhikr)"},
	{"repentance", "Repentance (Tawbah)"},
	{"sincerity", "Sincerity (Ikhlas)"},
	{"humility", "Humility"},
	{"generosity", "Generosity"},
	{"backbiting", "Backbiting (Gheebah)"},
	{"anger", "Anger Control"},
	{"sick", "Visiting the Sick"},
	{"orphans", "Caring for Orphans"},
	{"animals", "Kindness to Animals"},
	{"business", "Business & Trade"},
	{"leadership", "Leadership"},
	{"unity", "Unity"},
	{"peace", "Peace"},
	{"brotherhood", "Brotherhood"},
	{"women", "Women in Islam"},
	{"children", "Raising Children"},
	{"guest", "Honoring Guests"},
	{"travel", "Travel Etiquette"},
}

// TitleFor resolves a category id to its display title. Unknown ids
// fall back to the raw id so favoriting never loses the category.
func TitleFor(id string) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Title
		}
	}
	return id
}
