package hadith

import (
	"time"

	"github.com/deenlife/deenlife/internal/models"
	"github.com/deenlife/deenlife/internal/store"
)

// Favorites manages the favorited-hadith register. Each favorite is a
// denormalized snapshot frozen at the moment of favoriting: later
// changes to the seed data never reach stored favorites.
type Favorites struct {
	store *store.Store
	now   func() time.Time
}

// NewFavorites creates the register backed by s.
func NewFavorites(s *store.Store) *Favorites {
	return &Favorites{store: s, now: time.Now}
}

// List returns all favorites, oldest first.
func (f *Favorites) List() []models.FavoriteHadith {
	favs, _ := store.Get[[]models.FavoriteHadith](f.store, store.KeyFavoriteHadiths)
	return favs
}

// IsFavorite reports whether the reference is favorited.
func (f *Favorites) IsFavorite(refNumber string) bool {
	for _, fav := range f.List() {
		if fav.RefNumber == refNumber {
			return true
		}
	}
	return false
}

// Toggle favorites the hadith, or removes it if already favorited.
// When adding, the category id is resolved to its display title and
// the full content snapshotted.
func (f *Favorites) Toggle(h models.Hadith) error {
	return store.Update(f.store, store.KeyFavoriteHadiths, func(cur []models.FavoriteHadith) []models.FavoriteHadith {
		for i, fav := range cur {
			if fav.RefNumber == h.RefNumber {
				return append(cur[:i], cur[i+1:]...)
			}
		}
		return append(cur, models.FavoriteHadith{
			RefNumber: h.RefNumber,
			Category:  TitleFor(h.Category),
			Text:      h.Text,
			Arabic:    h.Arabic,
			Source:    h.Source,
			Timestamp: f.now().UnixMilli(),
		})
	})
}
