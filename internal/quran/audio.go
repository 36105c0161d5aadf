package quran

import (
	"fmt"

	"github.com/deenlife/deenlife/internal/models"
)

// Reciters lists the available recitation sources. Server URLs are the
// mp3quran.net mirrors; each serves one MP3 per surah.
var Reciters = []models.Reciter{
	{ID: "mishary", Name: "Mishari Rashid Al-Afasy", Subtext: "Kuwait - Imam of Masjid Al-Kabir", ServerURL: "https://server8.mp3quran.net/afs/"},
	{ID: "sudais", Name: "Abdur-Rahman As-Sudais", Subtext: "Saudi Arabia - Imam Masjid Al-Harram (Makkah)", ServerURL: "https://server11.mp3quran.net/sds/"},
	{ID: "shuraym", Name: "Sa`ud Ash-Shuraym", Subtext: "Saudi Arabia - Imam Masjid Al-Harram (Makkah)", ServerURL: "https://server7.mp3quran.net/shur/"},
	{ID: "ghamdi", Name: "Saad Al-Ghamdi", Subtext: "Saudi Arabia - Imam Masjid Al-Harram (Makkah)", ServerURL: "https://server7.mp3quran.net/s_gmd/"},
	{ID: "dosari", Name: "Yasser Al-Dosari", Subtext: "Saudi Arabia - Imam Masjid Al-Harram (Makkah)", ServerURL: "https://server11.mp3quran.net/yasser/"},
	{ID: "maher", Name: "Maher Al Meaqli", Subtext: "Saudi Arabia - Imam Masjid Al-Harram (Makkah)", ServerURL: "https://server12.mp3quran.net/maher/"},
	{ID: "basit", Name: "Abdul Basit", Subtext: "Egypt - Murattal", ServerURL: "https://server7.mp3quran.net/basit/"},
	{ID: "juhany", Name: "Abdullah Al-Johany", Subtext: "Saudi Arabia - Imam Masjid Al-Harram (Makkah)", ServerURL: "https://server13.mp3quran.net/jhn/"},
	{ID: "baleela", Name: "Imam Bandar Baleela", Subtext: "Saudi Arabia", ServerURL: "https://server6.mp3quran.net/balila/"},
	{ID: "alossi", Name: "Abdur-Rahman Aloosi", Subtext: "Saudi Arabia - Al-Ikhlass Mosque (Al Khobar)", ServerURL: "https://server6.mp3quran.net/aloosi/"},
	{ID: "minshawi", Name: "Muhammad Siddiq al-Minshawi", Subtext: "Egypt", ServerURL: "https://server10.mp3quran.net/minsh/"},
	{ID: "huth", Name: "Ali Abdur-Rahman Al-Huthaify", Subtext: "Saudi Arabia - Imam Masjid Nabvi", ServerURL: "https://server9.mp3quran.net/hthfi/"},
}

// ReciterByID finds a reciter by id.
func ReciterByID(id string) (models.Reciter, bool) {
	for _, r := range Reciters {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reciter{}, false
}

// AudioURL builds the direct stream URL for a surah: the reciter's
// base URL plus the zero-padded three-digit surah number.
func AudioURL(r models.Reciter, surahNumber int) string {
	return fmt.Sprintf("%s%03d.mp3", r.ServerURL, surahNumber)
}
