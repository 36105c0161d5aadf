// Package dua holds a curated set of supplications from the Quran and
// Sunnah with transliteration and English translation.
package dua

import "strings"

// Dua is a single supplication.
type Dua struct {
	Category        string `json:"category"`
	Source          string `json:"source"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
}

// Languages lists the translation targets offered for dua text.
var Languages = []string{
	"English", "Urdu", "Indonesian", "Turkish", "French", "Spanish",
	"Hindi", "Bengali", "Russian", "German", "Malay", "Chinese", "Persian",
}

// All returns the full collection in display order.
func All() []Dua {
	out := make([]Dua, len(duas))
	copy(out, duas)
	return out
}

// Search filters the collection by a case-insensitive substring match
// against category and translation. An empty query returns everything.
func Search(query string) []Dua {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	var out []Dua
	for _, d := range duas {
		if strings.Contains(strings.ToLower(d.Category), q) ||
			strings.Contains(strings.ToLower(d.Translation), q) {
			out = append(out, d)
		}
	}
	return out
}

var duas = []Dua{
	{
		Category:        "General Good",
		Source:          "Surah Al-Baqarah 2:201",
		Arabic:          "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً وَفِي الآخِرَةِ حَسَنَةً وَقِنَا عَذَابَ النَّارِ",
		Transliteration: "Rabbana atina fid-dunya hasanatan wa fil 'akhirati hasanatan waqina 'adhaban-nar.",
		Translation:     "Our Lord! Give us in this world that which is good and in the Hereafter that which is good, and save us from the torment of the Fire.",
	},
	{
		Category:        "Forgiveness",
		Source:          "Surah Al-A'raf 7:23",
		Arabic:          "رَبَّنَا ظَلَمْنَا أَنفُسَنَا وَإِن لَّمْ تَغْفِرْ لَنَا وَتَرْحَمْنَا لَنَكُونَنَّ مِنَ الْخَاسِرِينَ",
		Transliteration: "Rabbana zalamna anfusana wa in lam taghfir lana wa tarhamna lanakunanna minal-khasireen.",
		Translation:     "Our Lord! We have wronged ourselves. If You forgive us not, and bestow not upon us Your Mercy, we shall certainly be of the losers.",
	},
	{
		Category:        "Parents",
		Source:          "Surah Al-Isra 17:24",
		Arabic:          "رَّبِّ ارْحَمْهُمَا كَمَا رَبَّيَانِي صَغِيرًا",
		Transliteration: "Rabbir hamhuma kama rabbayani sagheera.",
		Translation:     "My Lord! Bestow on them Your Mercy as they did bring me up when I was small.",
	},
	{
		Category:        "Knowledge",
		Source:          "Surah Taha 20:114",
		Arabic:          "رَّبِّ زِدْنِي عِلْمًا",
		Transliteration: "Rabbi zidni 'ilma.",
		Translation:     "My Lord! Increase me in knowledge.",
	},
	{
		Category:        "Guidance",
		Source:          "Surah Al-Fatiha 1:6",
		Arabic:          "اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ",
		Transliteration: "Ihdinas-siratal-mustaqeem.",
		Translation:     "Guide us to the Straight Path.",
	},
	{
		Category:        "Patience",
		Source:          "Surah Al-Baqarah 2:250",
		Arabic:          "رَبَّنَا أَفْرِغْ عَلَيْنَا صَبْرًا وَثَبِّتْ أَقْدَامَنَا وَانصُرْنَا عَلَى الْقَوْمِ الْكَافِرِينَ",
		Transliteration: "Rabbana afrigh 'alayna sabran wa thabbit aqdamana wansurna 'alal-qawmil-kafireen.",
		Translation:     "Our Lord! Pour forth on us patience and make our foothold firm, and give us victory over the disbelieving people.",
	},
	{
		Category:        "Spouse & Offspring",
		Source:          "Surah Al-Furqan 25:74",
		Arabic:          "رَبَّنَا هَبْ لَنَا مِنْ أَزْوَاجِنَا وَذُرِّيَّاتِنَا قُرَّةَ أَعْيُنٍ وَاجْعَلْنَا لِلْمُتَّقِينَ إِمَامًا",
		Transliteration: "Rabbana hab lana min azwajina wa dhurriyatina qurrata a'yunin waj'alna lil-muttaqina imama.",
		Translation:     "Our Lord! Grant unto us wives and offspring who will be the comfort of our eyes, and give us (the grace) to lead the righteous.",
	},
	{
		Category:        "Acceptance",
		Source:          "Surah Al-Baqarah 2:127",
		Arabic:          "رَبَّنَا تَقَبَّلْ مِنَّا إِنَّكَ أَنتَ السَّمِيعُ الْعَلِيمُ",
		Transliteration: "Rabbana taqabbal minna innaka antas-sami'ul-'aleem.",
		Translation:     "Our Lord! Accept (this service) from us. Verily! You are the All-Hearer, the All-Knower.",
	},
	{
		Category:        "Morning",
		Source:          "Sahih Muslim",
		Arabic:          "اللّهُـمَّ بِكَ أَصْـبَحْنا وَبِكَ أَمْسَـينا ، وَبِكَ نَحْـيا وَبِكَ نَمُـوتُ وَإِلَـيْكَ النُّـشُور",
		Transliteration: "Allahumma bika asbahna wa bika amsayna, wa bika nahya wa bika namutu wa ilaykan-nushur.",
		Translation:     "O Allah, by You we enter the morning and by You we enter the evening, by You we live and by You we die, and to You is the Final Return.",
	},
	{
		Category:        "Evening",
		Source:          "Sahih Muslim",
		Arabic:          "اللّهُـمَّ بِكَ أَمْسَـينا وَبِكَ أَصْـبَحْنا، وَبِكَ نَحْـيا وَبِكَ نَمُـوتُ وَإِلَـيْكَ الْمَصِير",
		Transliteration: "Allahumma bika amsayna wa bika asbahna, wa bika nahya wa bika namutu wa ilaykal-maseer.",
		Translation:     "O Allah, by You we enter the evening and by You we enter the morning, by You we live and by You we die, and to You is the Final Return.",
	},
	{
		Category:        "Before Eating",
		Source:          "Sunan Abi Dawud",
		Arabic:          "بِسْمِ اللَّهِ",
		Transliteration: "Bismillah.",
		Translation:     "In the name of Allah.",
	},
	{
		Category:        "After Eating",
		Source:          "Sunan At-Tirmidhi",
		Arabic:          "الْحَمْدُ لِلَّهِ الَّذِي أَطْعَمَنِي هَذَا وَرَزَقَنِيهِ مِنْ غَيْرِ حَوْلٍ مِنِّي وَلا قُوَّةٍ",
		Transliteration: "Al-hamdu lillahilladhi at'amani hadha wa razaqanihi min ghayri hawlin minni wa la quwwah.",
		Translation:     "Praise is to Allah Who has fed me this and provided it for me without any strength or power on my part.",
	},
	{
		Category:        "Leaving Home",
		Source:          "Sunan Abi Dawud",
		Arabic:          "بِسْمِ اللَّهِ تَوَكَّلْتُ عَلَى اللَّهِ، لاَ حَوْلَ وَلاَ قُوَّةَ إِلاَّ بِاللَّهِ",
		Transliteration: "Bismillahi, tawakkaltu 'alallahi, wa la hawla wa la quwwata illa billah.",
		Translation:     "In the name of Allah, I place my trust in Allah, and there is no might nor power except with Allah.",
	},
	{
		Category:        "Entering Home",
		Source:          "Sahih Muslim",
		Arabic:          "بِسْـمِ اللهِ وَلَجْنـا، وَبِسْـمِ اللهِ خَـرَجْنـا، وَعَلـى رَبِّنـا تَوَكّلْـنا",
		Transliteration: "Bismillahi walajna, wa bismillahi kharajna, wa 'ala Rabbina tawakkalna.",
		Translation:     "In the Name of Allah we enter, in the Name of Allah we leave, and upon our Lord we depend.",
	},
	{
		Category:        "Travel",
		Source:          "Surah Az-Zukhruf 43:13-14",
		Arabic:          "سُبْحَانَ الَّذِي سَخَّرَ لَنَا هَذَا وَمَا كُنَّا لَهُ مُقْرِنِينَ وَإِنَّا إِلَى رَبِّنَا لَمُنْقَلِبُونَ",
		Transliteration: "Subhanalla-dhi sakh-khara lana hadha wa ma kunna lahu muqrineen. Wa inna ila Rabbina la-munqaliboon.",
		Translation:     "Glory unto Him Who created this transportation, for us, though we were unable to create it on our own. And unto our Lord we shall return.",
	},
	{
		Category:        "Sleep",
		Source:          "Sahih Bukhari",
		Arabic:          "بِاسْمِكَ اللَّهُمَّ أَمُوتُ وَأَحْيَا",
		Transliteration: "Bismika Allahumma amootu wa ahya.",
		Translation:     "In Your Name, O Allah, I die and I live.",
	},
	{
		Category:        "Waking Up",
		Source:          "Sahih Bukhari",
		Arabic:          "الْحَمْدُ لِلهِ الَّذِي أَحْيَانَا بَعْدَ مَا أَمَاتَنَا وَإِلَيْهِ النُّشُورُ",
		Transliteration: "Alhamdu lillahil-ladhi ahyana ba'da ma amatana wa ilayhin-nushoor.",
		Translation:     "Praise is to Allah Who gives us life after He has caused us to die and to Him is the return.",
	},
	{
		Category:        "Distress",
		Source:          "Sahih Bukhari",
		Arabic:          "لا إِلَهَ إِلا اللَّهُ الْعَظِيمُ الْحَلِيمُ، لا إِلَهَ إِلا اللَّهُ رَبُّ الْعَرْشِ الْعَظِيمِ",
		Transliteration: "La ilaha illallahul-'Adheemul-Haleem, la ilaha illallahu Rabbul-'arshil-'adheem.",
		Translation:     "There is no god but Allah, the Great, the Tolerant. There is no god but Allah, Lord of the Magnificent Throne.",
	},
	{
		Category:        "Visiting Sick",
		Source:          "Sahih Bukhari",
		Arabic:          "لا بَأْسَ طَهُورٌ إِنْ شَاءَ اللَّهُ",
		Transliteration: "La ba'sa tahoorun insha'Allah.",
		Translation:     "Do not worry, it will be a purification (for you), if Allah wills.",
	},
	{
		Category:        "Sneezing",
		Source:          "Sahih Bukhari",
		Arabic:          "الْحَمْدُ لِلَّهِ",
		Transliteration: "Alhamdulillah.",
		Translation:     "All praise is due to Allah.",
	},
}
