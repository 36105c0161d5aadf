package quran

// Juz is one of the 30 reading divisions, identified by the surah and
// ayah it opens with. The boundaries are fixed by convention and used
// for display grouping only.
type Juz struct {
	Number     int
	StartSurah int
	StartAyah  int
}

var Juzs = []Juz{
	{1, 1, 1}, {2, 2, 142}, {3, 2, 253}, {4, 3, 93}, {5, 4, 24},
	{6, 4, 148}, {7, 5, 82}, {8, 6, 111}, {9, 7, 88}, {10, 8, 41},
	{11, 9, 93}, {12, 11, 6}, {13, 12, 53}, {14, 15, 1}, {15, 17, 1},
	{16, 18, 75}, {17, 21, 1}, {18, 23, 1}, {19, 25, 21}, {20, 27, 56},
	{21, 29, 46}, {22, 33, 31}, {23, 36, 28}, {24, 39, 32}, {25, 41, 47},
	{26, 46, 1}, {27, 51, 31}, {28, 58, 1}, {29, 67, 1}, {30, 78, 1},
}

// JuzForSurah returns the juz' whose span contains the start of the
// given surah.
func JuzForSurah(surahNumber int) Juz {
	result := Juzs[0]
	for _, j := range Juzs {
		if j.StartSurah < surahNumber || (j.StartSurah == surahNumber && j.StartAyah == 1) {
			result = j
		}
	}
	return result
}
