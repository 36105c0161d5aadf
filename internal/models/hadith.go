package models

// Hadith is one entry in the browsable collection. RefNumber is the
// synthesized stable identifier within a category cycle.
type Hadith struct {
	RefNumber string `json:"refNumber"`
	Category  string `json:"category"` // category id, not display title
	Text      string `json:"text"`
	Arabic    string `json:"arabic"`
	Source    string `json:"source"`
}

// FavoriteHadith is a denormalized snapshot taken at favoriting time.
// Later changes to the seed data must not alter stored favorites.
type FavoriteHadith struct {
	RefNumber string `json:"refNumber"`
	Category  string `json:"category"` // resolved display title
	Text      string `json:"text"`
	Arabic    string `json:"arabic"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}
