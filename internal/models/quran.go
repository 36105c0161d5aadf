package models

// Surah is one chapter of the Quran, identified by number 1-114.
// The metadata mirrors the alquran.cloud /surah response.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"` // Arabic name
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Ayah is a single verse within a surah edition.
type Ayah struct {
	Number        int    `json:"number"` // global ayah number
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
}

// LastRead is the single resume pointer, overwritten on every
// successful surah load. It is not a history.
type LastRead struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	Timestamp   int64  `json:"timestamp"` // epoch ms
}

// Bookmark marks one ayah, unique per (surah, ayah) pair.
type Bookmark struct {
	SurahNumber int    `json:"surahNumber"`
	AyahNumber  int    `json:"ayahNumber"`
	Text        string `json:"text"` // preview snippet, truncated at creation
	Timestamp   int64  `json:"timestamp"`
}

// Reciter is an audio recitation source.
type Reciter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subtext   string `json:"subtext"`
	ServerURL string `json:"serverUrl"` // base URL for per-surah MP3s
}
