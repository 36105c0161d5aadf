package hadith

// seed is one real hadith (or ayah) text used to generate the
// browsable list for its category.
type seed struct {
	Text   string
	Source string
	Arabic string
}

// seedHadiths maps category id to its seed texts. The browsable list
// for a category cycles these seeds up to the display target; this is
// an honest simulation of a larger corpus, documented as such.
var seedHadiths = map[string][]seed{
	"intentions": {
		{"Actions are judged by intentions, so each man will have what he intended.", "Sahih Bukhari & Muslim", "إِنَّمَا الْأَعْمَالُ بِالنِّيَّاتِ، وَإِنَّمَا لِكُلِّ امْرِئٍ مَا نَوَى"},
		{"Allah does not look at your figures, nor at your attire but He looks at your hearts and accomplishments.", "Sahih Muslim", "إِنَّ اللهَ لا يَنْظُرُ إِلى أَجْسامِكْم، وَلا إِلى صُوَرِكُمْ، وَلَكِنْ يَنْظُرُ إِلى قُلُوبِكُمْ"},
	},
	"character": {
		{"The best among you are those who have the best manners and character.", "Sahih Bukhari", "إِنَّ مِنْ خِيَارِكُمْ أَحْسَنَكُمْ أَخْلَاقًا"},
		{"Nothing is heavier on the Scale of the Believer on the Day of Resurrection than good character.", "Tirmidhi", "مَا مِنْ شَيْءٍ أَثْقَلُ فِي مِيزَانِ الْمُؤْمِنِ يَوْمَ الْقِيَامَةِ مِنْ حُسْنِ الْخُلُقِ"},
	},
	"prayer": {
		{"The first thing for which a person will be brought to account on the Day of Resurrection will be his prayer.", "Sunan al-Tirmidhi", "إِنَّ أَوَّلَ مَا يُحَاسَبُ بِهِ الْعَبْدُ يَوْمَ الْقِيَامَةِ مِنْ عَمَلِهِ صَلَاتُهُ"},
		{"Between a man and shirk and kufr there stands his neglect of the prayer.", "Sahih Muslim", "إِنَّ بَيْنَ الرَّجُلِ وَبَيْنَ الشِّرْكِ وَالْكُفْرِ تَرْكُ الصَّلَاةِ"},
	},
	"charity": {
		{"Charity does not decrease wealth.", "Sahih Muslim", "مَا نَقَصَتْ صَدَقَةٌ مِنْ مَالٍ"},
		{"Save yourself from Hell-fire even by giving half a date-fruit in charity.", "Sahih Bukhari", "اتَّقُوا النَّارَ وَلَوْ بِشِقِّ تَمْرَةٍ"},
	},
	"patience": {
		{"No fatigue, nor disease, nor sorrow, nor sadness, nor hurt, nor distress befalls a Muslim, even if it were the prick he receives from a thorn, but that Allah expiates some of his sins for that.", "Sahih Bukhari", "مَا يُصِيبُ الْمُسْلِمَ مِنْ نَصَبٍ وَلَا وَصَبٍ وَلَا هَمٍّ وَلَا حُزْنٍ وَلَا أَذًى وَلَا غَمٍّ حَتَّى الشَّوْكَةِ يُشَاكُهَا إِلَّا كَفَّرَ اللَّهُ بِهَا مِنْ خَطَايَاهُ"},
		{"Real patience is at the first stroke of a calamity.", "Sahih Bukhari", "إِنَّمَا الصَّبْرُ عِنْدَ الصَّدْمَةِ الْأُولَى"},
	},
	"knowledge": {
		{"Seeking knowledge is a duty upon every Muslim.", "Sunan Ibn Majah", "طَلَبُ الْعِلْمِ فَرِيضَةٌ عَلَى كُلِّ مُسْلِمٍ"},
		{"Whoever follows a path in the pursuit of knowledge, Allah will make easy for him a path to Paradise.", "Sahih Muslim", "مَنْ سَلَكَ طَرِيقًا يَلْتَمِسُ فِيهِ عِلْمًا سَهَّلَ اللَّهُ لَهُ بِهِ طَرِيقًا إِلَى الْجَنَّةِ"},
	},
	"truthfulness": {
		{"Truthfulness leads to righteousness, and righteousness leads to Paradise.", "Sahih Bukhari", "إِنَّ الصِّدْقَ يَهْدِي إِلَى الْبِرِّ وَإِنَّ الْبِرَّ يَهْدِي إِلَى الْجَنَّةِ"},
	},
	"parents": {
		{"Paradise lies beneath the feet of your mother.", "Sunan An-Nasa'i", "الْجَنَّةُ تَحْتَ أَقْدَامِ الْأُمَّهَاتِ"},
		{"The pleasure of the Lord lies in the pleasure of the parent.", "Tirmidhi", "رِضَا الرَّبِّ فِي رِضَا الْوَالِدِ وَسَخَطُ الرَّبِّ فِي سَخَطِ الْوَالِدِ"},
	},
	"neighbours": {
		{"He is not a believer whose stomach is filled while the neighbor to his side goes hungry.", "Al-Adab Al-Mufrad", "لَيْسَ الْمُؤْمِنُ الَّذِي يَشْبَعُ وَجَارُهُ جَائِعٌ إِلَى جَنْبِهِ"},
		{"Gabriel continued to recommend me about treating the neighbors so kindly and politely that I thought he would order me to make them as my heirs.", "Sahih Bukhari", "مَا زَالَ جِبْرِيلُ يُوصِينِي بِالْجَارِ حَتَّى ظَنَنْتُ أَنَّهُ سَيُوَرِّثُهُ"},
	},
	"forgiveness": {
		{"Whoever does not show mercy will not be shown mercy.", "Sahih Bukhari", "مَنْ لَا يَرْحَمُ لَا يُرْحَمُ"},
		{"Be merciful to others and you will receive mercy. Forgive others and Allah will forgive you.", "Musnad Ahmad", "ارْحَمُوا تُرْحَمُوا وَاغْفِرُوا يَغْفِرُ اللَّهُ لَكُمْ"},
	},
	"mercy": {
		{"The Merciful One shows mercy to those who are merciful. Show mercy to those on earth, and the One in the heavens will show mercy to you.", "Tirmidhi", "الرَّاحِمُونَ يَرْحَمُهُمُ الرَّحْمَنُ ارْحَمُوا مَنْ فِي الْأَرْضِ يَرْحَمْكُمْ مَنْ فِي السَّمَاءِ"},
	},
	"justice": {
		{"Allah commands justice, the doing of good, and liberality to kith and kin.", "Quran 16:90", "إِنَّ اللَّهَ يَأْمُرُ بِالْعَدْلِ وَالْإِحْسَانِ وَإِيتَاءِ ذِي الْقُرْبَى"},
		{"Beware of the supplication of the oppressed, for there is no barrier between it and Allah.", "Sahih Bukhari", "اتَّقِ دَعْوَةَ الْمَظْلُومِ فَإِنَّهُ لَيْسَ بَيْنَهُ وَبَيْنَ اللَّهِ حِجَابٌ"},
	},
	"health": {
		{"There are two blessings which many people lose: (They are) health and free time for doing good.", "Sahih Bukhari", "نِعْمَتَانِ مَغْبُونٌ فِيهِمَا كَثِيرٌ مِنَ النَّاسِ الصِّحَّةُ وَالْفَرَاغُ"},
	},
	"death": {
		{"Remember often the destroyer of pleasures (death).", "Tirmidhi", "أَكْثِرُوا ذِكْرَ هَاذِمِ اللَّذَّاتِ"},
	},
	"paradise": {
		{"In Paradise there are things which no eye has seen, no ear has heard, and no human mind has perceived.", "Sahih Bukhari", "فِيهَا مَا لَا عَيْنٌ رَأَتْ وَلَا أُذُنٌ سَمِعَتْ وَلَا خَطَرَ عَلَى قَلْبِ بَشَرٍ"},
	},
	"hellfire": {
		{"The Hell Fire is surrounded by all kinds of desires and passions, while Paradise is surrounded by all kinds of disliked undesirable things.", "Sahih Bukhari", "حُفَّتِ النَّارُ بِالشَّهَوَاتِ وَحُفَّتِ الْجَنَّةُ بِالْمَكَارِهِ"},
	},
	"fasting": {
		{"Fasting is a shield.", "Sahih Muslim", "الصِّيَامُ جُنَّةٌ"},
		{"Whoever fasts Ramadan out of faith and hope for reward, his past sins will be forgiven.", "Sahih Bukhari", "مَنْ صَامَ رَمَضَانَ إِيمَانًا وَاحْتِسَابًا غُفِرَ لَهُ مَا تَقَدَّمَ مِنْ ذَنْبِهِ"},
	},
	"hajj": {
		{"Whoever performs Hajj and does not commit any obscenity or transgression shall return [free from sin] as he was on the day his mother gave birth to him.", "Sahih Bukhari", "مَنْ حَجَّ لِلَّهِ فَلَمْ يَرْفُثْ وَلَمْ يَفْسُقْ رَجَعَ كَيَوْمِ وَلَدَتْهُ أُمُّهُ"},
	},
	"zakat": {
		{"Islam is built on five: ... and giving Zakat.", "Sahih Bukhari", "بُنِيَ الْإِسْلَامُ عَلَى خَمْسٍ ... وَإِيتَاءِ الزَّكَاةِ"},
	},
	"marriage": {
		{"Marriage is part of my sunnah, and whoever does not follow my sunnah has nothing to do with me.", "Ibn Majah", "النِّكَاحُ مِنْ سُنَّتِي فَمَنْ لَمْ يَعْمَلْ بِسُنَّتِي فَلَيْسَ مِنِّي"},
		{"The best of you is the one who is best to his wife.", "Tirmidhi", "خَيْرُكُمْ خَيْرُكُمْ لِأَهْلِهِ وَأَنَا خَيْرُكُمْ لِأَهْلِي"},
	},
	"family": {
		{"The one who severs the ties of kinship will not enter Paradise.", "Sahih Muslim", "لَا يَدْخُلُ الْجَنَّةَ قَاطِعُ رَحِمٍ"},
	},
	"friendship": {
		{"A person is on the religion of his best friend, so let one of you look at whom he befriends.", "Abu Dawud", "الرَّجُلُ عَلَى دِينِ خَلِيلِهِ فَلْيَنْظُرْ أَحَدُكُمْ مَنْ يُخَالِلُ"},
	},
	"cleanliness": {
		{"Cleanliness is half of faith.", "Sahih Muslim", "الطُّهُورُ شَطْرُ الْإِيمَانِ"},
	},
	"modesty": {
		{"Modesty brings nothing but good.", "Sahih Bukhari", "الْحَيَاءُ لَا يَأْتِي إِلَّا بِخَيْرٍ"},
		{"Every religion has a distinct characteristic, and the distinct characteristic of Islam is modesty (Haya).", "Ibn Majah", "إِنَّ لِكُلِّ دِينٍ خُلُقًا وَخُلُقُ الْإِسْلَامِ الْحَيَاءُ"},
	},
	"gratitude": {
		{"Whoever is not grateful to the people, he is not grateful to Allah.", "Tirmidhi", "مَنْ لَمْ يَشْكُرِ النَّاسَ لَمْ يَشْكُرِ اللَّهَ"},
	},
	"tawakkul": {
		{"If you were to rely upon Allah with the reliance He is due, you would be provided for like the birds.", "Tirmidhi", "لَوْ أَنَّكُمْ تَوَكَّلْتُمْ عَلَى اللَّهِ حَقَّ تَوَكُّلِهِ لَرَزَقَكُمْ كَمَا يَرْزُقُ الطَّيْرَ"},
	},
	"quran": {
		{"The best of you are those who learn the Quran and teach it.", "Sahih Bukhari", "خَيْرُكُمْ مَنْ تَعَلَّمَ الْقُرْآنَ وَعَلَّمَهُ"},
		{"Recite the Quran, for it will come as an intercessor for its reciters on the Day of Resurrection.", "Sahih Muslim", "اقْرَءُوا الْقُرْآنَ فَإِنَّهُ يَأْتِي يَوْمَ الْقِيَامَةِ شَفِيعًا لِأَصْحَابِهِ"},
	},
	"prophethood": {
		{"I have been sent to perfect good character.", "Al-Muwatta", "إِنَّمَا بُعِثْتُ لِأُتَمِّمَ صَالِحَ الْأَخْلَاقِ"},
	},
	"angels": {
		{"The angels lower their wings for the seeker of knowledge, out of pleasure at what he does.", "Abu Dawud", "وَإِنَّ الْمَلَائِكَةَ لَتَضَعُ أَجْنِحَتَهَا رِضًا لِطَالِبِ الْعِلْمِ"},
	},
	"judgment": {
		{"The feet of the son of Adam shall not move from before his Lord on the Day of Judgment until he is asked about five things...", "Tirmidhi", "لاَ تَزُولُ قَدَمَا ابْنِ آدَمَ يَوْمَ الْقِيَامَةِ مِنْ عِنْدِ رَبِّهِ حَتَّى يُسْأَلَ عَنْ خَمْسٍ"},
	},
	"dua": {
		{"Dua is worship.", "Abu Dawud", "الدُّعَاءُ هُوَ الْعِبَادَةُ"},
		{"The supplication of a Muslim for his brother in his absence will certainly be answered.", "Sahih Muslim", "دَعْوَةُ الْمَرْءِ الْمُسْلِمِ لِأَخِيهِ بِظَهْرِ الْغَيْبِ مُسْتَجَابَةٌ"},
	},
	"dhikr": {
		{"The example of the one who remembers his Lord and the one who does not is like the living and the dead.", "Sahih Bukhari", "مَثَلُ الَّذِي يَذْكُرُ رَبَّهُ وَالَّذِي لَا يَذْكُرُ رَبَّهُ مَثَلُ الْحَيِّ وَالْمَيِّتِ"},
	},
	"repentance": {
		{"All the sons of Adam are sinners, but the best of sinners are those who repent often.", "Tirmidhi", "كُلُّ بَنِي آدَمَ خَطَّاءٌ وَخَيْرُ الْخَطَّائِينَ التَّوَّابُونَ"},
	},
	"sincerity": {
		{"Allah accepts only that which is done for His sake and to seek His pleasure.", "Nasai", "إِنَّ اللَّهَ لَا يَقْبَلُ مِنَ الْعَمَلِ إِلَّا مَا كَانَ لَهُ خَالِصًا وَابْتُغِيَ بِهِ وَجْهُهُ"},
	},
	"humility": {
		{"No one who has the weight of a seed of arrogance in his heart will enter Paradise.", "Sahih Muslim", "لَا يَدْخُلُ الْجَنَّةَ مَنْ كَانَ فِي قَلْبِهِ مِثْقَالُ ذَرَّةٍ مِنْ كِبْرٍ"},
	},
	"generosity": {
		{"The generous man is near Allah, near Paradise, near men and far from Hell.", "Tirmidhi", "السَّخِيُّ قَرِيبٌ مِنَ اللَّهِ قَرِيبٌ مِنَ الْجَنَّةِ قَرِيبٌ مِنَ النَّاسِ بَعِيدٌ مِنَ النَّارِ"},
	},
	"backbiting": {
		{"Do not backbite one another. Would one of you like to eat the flesh of his dead brother? You would detest it.", "Quran 49:12", "وَلَا يَغْتَبْ بَعْضُكُمْ بَعْضًا أَيُحِبُّ أَحَدُكُمْ أَنْ يَأْكُلَ لَحْمَ أَخِيهِ مَيْتًا فَكَرِهْتُمُوهُ"},
		{"Do you know what is backbiting? It is to mention about your brother that which he dislikes.", "Sahih Muslim", "أَتَدْرُونَ مَا الْغِيبَةُ قَالُوا اللَّهُ وَرَسُولُهُ أَعْلَمُ قَالَ ذِكْرُكَ أَخَاكَ بِمَا يَكْرَهُ"},
	},
	"anger": {
		{"The strong man is not the good wrestler; the strong man is only the one who controls himself when he is angry.", "Sahih Bukhari", "لَيْسَ الشَّدِيدُ بِالصُّرَعَةِ إِنَّمَا الشَّدِيدُ الَّذِي يَمْلِكُ نَفْسَهُ عِنْدَ الْغَضَبِ"},
	},
	"sick": {
		{"Visit the sick, feed the hungry, and free the captive.", "Sahih Bukhari", "عُودُوا الْمَرِيضَ وَأَطْعِمُوا الْجَائِعَ وَفُكُّوا الْعَانِيَ"},
	},
	"orphans": {
		{"I and the person who looks after an orphan and provides for him, will be in Paradise like this.", "Sahih Bukhari", "أَنَا وَكَافِلُ الْيَتِيمِ فِي الْجَنَّةِ هَكَذَا"},
	},
	"animals": {
		{"Fear Allah with regard to these dumb animals. Ride them when they are fit, and eat them when they are fit.", "Abu Dawud", "اتَّقُوا اللَّهَ فِي هَذِهِ الْبَهَائِمِ الْمُعْجَمَةِ فَارْكَبُوهَا صَالِحَةً وَكُلُوهَا صَالِحَةً"},
	},
	"business": {
		{"The truthful, trustworthy merchant is with the Prophets, the Truthful, and the Martyrs.", "Tirmidhi", "التَّاجِرُ الصَّدُوقُ الْأَمِينُ مَعَ النَّبِيِّينَ وَالصِّدِّيقِينَ وَالشُّهَدَاءِ"},
	},
	"leadership": {
		{"Each of you is a shepherd and each of you is responsible for his flock.", "Sahih Bukhari", "كُلُّكُمْ رَاعٍ وَكُلُّكُمْ مَسْئُولٌ عَنْ رَعِيَّتِهِ"},
	},
	"unity": {
		{"Do not disagree and thus become divided.", "Sahih Muslim", "وَلَا تَخْتَلِفُوا فَتَخْتَلِفَ قُلُوبُكُمْ"},
		{"The believers are like one body in their love, mercy, and compassion for each other.", "Sahih Muslim", "مَثَلُ الْمُؤْمِنِينَ فِي تَوَادِّهِمْ وَتَرَاحُمِهِمْ وَتَعَاطُفِهِمْ مَثَلُ الْجَسَدِ"},
	},
	"peace": {
		{"Spread peace (Salam) amongst yourselves.", "Sahih Muslim", "أَفْشُوا السَّلَامَ بَيْنَكُمْ"},
		{"You will not enter Paradise until you believe, and you will not believe until you love one another. Shall I tell you something which, if you do, you will love one another? Spread peace amongst yourselves.", "Sahih Muslim", "لَا تَدْخُلُونَ الْجَنَّةَ حَتَّى تُؤْمِنُوا وَلَا تُؤْمِنُوا حَتَّى تَحَابُّوا أَوَلَا أَدُلُّكُمْ عَلَى شَيْءٍ إِذَا فَعَلْتُمُوهُ تَحَابَبْتُمْ أَفْشُوا السَّلَامَ بَيْنَكُمْ"},
	},
	"brotherhood": {
		{"A Muslim is a brother of another Muslim, he should not oppress him, nor should he hand him over to an oppressor.", "Sahih Bukhari", "الْمُسْلِمُ أَخُو الْمُسْلِمِ لَا يَظْلِمُهُ وَلَا يُسْلِمُهُ"},
	},
	"women": {
		{"Act kindly towards women.", "Sahih Bukhari", "اسْتَوْصُوا بِالنِّسَاءِ خَيْرًا"},
		{"The world is enjoyment and the best enjoyment in the world is a righteous wife.", "Sahih Muslim", "الدُّنْيَا مَتَاعٌ وَخَيْرُ مَتَاعِ الدُّنْيَا الْمَرْأَةُ الصَّالِحَةُ"},
	},
	"children": {
		{"Be afraid of Allah, and be just to your children.", "Sahih Bukhari", "اتَّقُوا اللَّهَ وَاعْدِلُوا بَيْنَ أَوْلَادِكُمْ"},
	},
	"guest": {
		{"Whoever believes in Allah and the Last Day, let him honor his guest.", "Sahih Bukhari", "مَنْ كَانَ يُؤْمِنُ بِاللَّهِ وَالْيَوْمِ الْآخِرِ فَلْيُكْرِمْ ضَيْفَهُ"},
	},
	"travel": {
		{"Travel is a portion of torment.", "Sahih Bukhari", "السَّفَرُ قِطْعَةٌ مِنَ الْعَذَابِ"},
	},
}
