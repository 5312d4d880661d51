package astro

import (
	"fmt"

	"jyotish/internal/models"
)

// Гана стоянки, индекс по номеру: 1 дэва, 2 манушья, 3 ракшаса.
var nakshatraGana = [28]int{
	0,
	1, 2, 3, 2, 1, 2, 1, 1, 3,
	3, 2, 2, 1, 3, 1, 3, 1, 3,
	3, 2, 2, 1, 3, 3, 2, 2, 1,
}

var (
	ganaNames     = map[int]string{1: "Deva", 2: "Manushya", 3: "Rakshasa"}
	ganaLongNames = map[int]string{1: "Deva (Divine)", 2: "Manushya (Human)", 3: "Rakshasa (Demon)"}
)

type yoniSymbol struct {
	animal string
	gender string
}

// Символьное животное стоянки и его пол, индекс по номеру стоянки.
var nakshatraYoni = [28]yoniSymbol{
	{},
	{"Horse", "M"}, {"Elephant", "M"}, {"Goat", "F"}, {"Serpent", "M"},
	{"Serpent", "F"}, {"Dog", "F"}, {"Cat", "F"}, {"Goat", "M"},
	{"Cat", "M"}, {"Rat", "M"}, {"Rat", "F"}, {"Buffalo", "M"},
	{"Buffalo", "F"}, {"Tiger", "F"}, {"Buffalo", "M"}, {"Tiger", "M"},
	{"Deer", "F"}, {"Deer", "M"}, {"Dog", "M"}, {"Monkey", "M"},
	{"Mongoose", "M"}, {"Monkey", "F"}, {"Lion", "F"}, {"Horse", "F"},
	{"Lion", "M"}, {"Cow", "F"}, {"Elephant", "F"},
}

// Вражеские пары животных, действуют в обе стороны.
var yoniEnemyPairs = [][2]string{
	{"Horse", "Buffalo"}, {"Elephant", "Lion"}, {"Goat", "Monkey"},
	{"Serpent", "Mongoose"}, {"Dog", "Deer"}, {"Cat", "Rat"},
	{"Tiger", "Cow"},
}

func yoniHostile(a, b string) bool {
	for _, p := range yoniEnemyPairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

// Нади стоянки, индекс по номеру: 1 ади, 2 мадхья, 3 антья.
var nakshatraNadi = [28]int{
	0,
	1, 2, 3, 3, 2, 1, 1, 2, 3,
	1, 2, 3, 3, 2, 1, 1, 2, 3,
	1, 2, 3, 3, 2, 1, 1, 2, 3,
}

var nadiNames = map[int]string{1: "Aadi (Vata)", 2: "Madhya (Pitta)", 3: "Antya (Kapha)"}

// Варна знака, индекс по номеру: 4 брахман, 3 кшатрий, 2 вайшья, 1 шудра.
var rashiVarna = [13]int{0, 4, 3, 3, 1, 4, 3, 3, 1, 4, 3, 3, 1}

var varnaNames = map[int]string{1: "Shudra", 2: "Vaishya", 3: "Kshatriya", 4: "Brahmin"}

// Класс вашьи знака, индекс по номеру.
var vashyaTypes = [13]string{
	"",
	"Chatushpad", "Chatushpad", "Dwipad", "Keeta",
	"Chatushpad", "Dwipad", "Dwipad", "Keeta",
	"Chatushpad", "Jalachara", "Dwipad", "Jalachara",
}

// Группы раджу по части тела.
var rajjuGroups = map[string][]models.Nakshatra{
	"Pada":  {1, 6, 7, 12, 13, 18, 19, 24, 25},
	"Kati":  {2, 5, 8, 11, 14, 17, 20, 23, 26},
	"Nabhi": {3, 4, 9, 10, 15, 16, 21, 22, 27},
}

func rajjuOf(n models.Nakshatra) string {
	for group, members := range rajjuGroups {
		for _, m := range members {
			if m == n {
				return group
			}
		}
	}
	return ""
}

// Пары ведхи, действуют в обе стороны.
var vedhaPairs = [][2]models.Nakshatra{
	{1, 18}, {2, 17}, {3, 16}, {4, 15}, {5, 14}, {6, 13}, {7, 12},
	{8, 11}, {9, 10}, {19, 27}, {20, 26}, {21, 25}, {22, 24}, {23, 23},
}

// Баллы дружбы владык знаков. Ненулевое значение означает дружбу,
// величина идёт в граха майтри.
var lordFriendship = map[models.Body]map[models.Body]float64{
	models.Sun:     {models.Moon: 5, models.Mars: 5, models.Jupiter: 5},
	models.Moon:    {models.Sun: 5, models.Mercury: 4},
	models.Mars:    {models.Sun: 5, models.Moon: 5, models.Jupiter: 5},
	models.Mercury: {models.Sun: 4, models.Venus: 5},
	models.Jupiter: {models.Sun: 5, models.Moon: 5, models.Mars: 5},
	models.Venus:   {models.Mercury: 5, models.Saturn: 5},
	models.Saturn:  {models.Mercury: 4, models.Venus: 5},
}

// nakshatraCount считает позицию to при отсчёте от from включительно.
func nakshatraCount(from, to models.Nakshatra) int {
	return posMod(int(to)-int(from), 27) + 1
}

func validateParties(bride, groom models.MatchParty) error {
	parties := []struct {
		role  string
		party models.MatchParty
	}{
		{"bride", bride},
		{"groom", groom},
	}
	for _, p := range parties {
		if !p.party.Nakshatra.Valid() {
			return fmt.Errorf("%s nakshatra must be within 1..27, got %d", p.role, p.party.Nakshatra)
		}
		if !p.party.Rashi.Valid() {
			return fmt.Errorf("%s rashi must be within 1..12, got %d", p.role, p.party.Rashi)
		}
	}
	return nil
}

// CalculatePorutham оценивает десять южноиндийских факторов.
// Провал раджу или ведхи блокирует рекомендацию независимо от остальных.
func CalculatePorutham(bride, groom models.MatchParty) (*models.PoruthamResult, error) {
	if err := validateParties(bride, groom); err != nil {
		return nil, err
	}

	checks := []models.PoruthamCheck{
		checkDinam(bride.Nakshatra, groom.Nakshatra),
		checkGanam(bride.Nakshatra, groom.Nakshatra),
		checkMahendra(bride.Nakshatra, groom.Nakshatra),
		checkStreeDeergham(bride.Nakshatra, groom.Nakshatra),
		checkYoniPorutham(bride.Nakshatra, groom.Nakshatra),
		checkRashiPorutham(bride.Rashi, groom.Rashi),
		checkRasiyathipathi(bride.Rashi, groom.Rashi),
		checkVasya(bride.Rashi, groom.Rashi),
	}

	rajju := checkRajju(bride.Nakshatra, groom.Nakshatra)
	vedha := checkVedha(bride.Nakshatra, groom.Nakshatra)
	checks = append(checks, rajju, vedha)

	var blockers []string
	if rajju.Result == models.FactorFail {
		blockers = append(blockers, "Rajju Porutham failed - potential for widowhood")
	}
	if vedha.Result == models.FactorFail {
		blockers = append(blockers, "Vedha Porutham failed - mutual affliction")
	}

	passed := 0
	for _, c := range checks {
		if c.Result == models.FactorPass {
			passed++
		}
	}
	percentage := float64(passed) / float64(len(checks)) * 100

	var recommendation string
	switch {
	case len(blockers) > 0:
		recommendation = "Not Recommended - Essential poruthams failed"
	case percentage >= 70:
		recommendation = "Highly Compatible - Excellent match"
	case percentage >= 50:
		recommendation = "Compatible - Good match with minor differences"
	default:
		recommendation = "Low Compatibility - Significant differences exist"
	}

	return &models.PoruthamResult{
		Checks:         checks,
		TotalMatched:   passed,
		TotalChecked:   len(checks),
		Percentage:     percentage,
		Recommendation: recommendation,
		HasBlockers:    len(blockers) > 0,
		BlockerDetails: blockers,
	}, nil
}

func checkDinam(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	count1 := nakshatraCount(brideNak, groomNak)
	count2 := nakshatraCount(groomNak, brideNak)

	inauspicious := map[int]bool{2: true, 4: true, 6: true, 8: true, 9: true}

	result, score := models.FactorFail, 0.0
	if !inauspicious[count1] && !inauspicious[count2] {
		result, score = models.FactorPass, 1.0
	}
	return models.PoruthamCheck{
		Name:        "Dinam",
		TamilName:   "தினம்",
		Result:      result,
		Score:       score,
		Description: "Evaluates daily happiness and health through nakshatra counting",
	}
}

func checkGanam(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	brideGana := nakshatraGana[brideNak]
	groomGana := nakshatraGana[groomNak]

	var result models.MatchFactorResult
	var score float64
	switch {
	case brideGana == groomGana:
		result, score = models.FactorPass, 1.0
	case brideGana == 1:
		result, score = models.FactorPass, 0.8
	case groomGana == 1 && brideGana == 2:
		result, score = models.FactorPass, 0.7
	case brideGana == 3 || groomGana == 3:
		result, score = models.FactorFail, 0.2
	default:
		result, score = models.FactorPartial, 0.5
	}

	return models.PoruthamCheck{
		Name:      "Ganam",
		TamilName: "கணம்",
		Result:    result,
		Score:     score,
		Description: fmt.Sprintf("Bride: %s, Groom: %s. Evaluates temperament and mental compatibility.",
			ganaLongNames[brideGana], ganaLongNames[groomGana]),
	}
}

func checkMahendra(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	count := nakshatraCount(brideNak, groomNak)
	auspicious := map[int]bool{4: true, 7: true, 10: true, 13: true, 16: true, 19: true, 22: true, 25: true}

	result, score := models.FactorFail, 0.0
	if auspicious[count] {
		result, score = models.FactorPass, 1.0
	}
	return models.PoruthamCheck{
		Name:        "Mahendra",
		TamilName:   "மகேந்திரம்",
		Result:      result,
		Score:       score,
		Description: fmt.Sprintf("Evaluates prosperity, wealth, and progeny. Count: %d", count),
	}
}

func checkStreeDeergham(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	count := posMod(int(groomNak)-int(brideNak), 27)

	result, score := models.FactorFail, 0.0
	if count >= 13 {
		result, score = models.FactorPass, 1.0
	}
	return models.PoruthamCheck{
		Name:        "Stree Deergham",
		TamilName:   "ஸ்த்ரீ தீர்க்கம்",
		Result:      result,
		Score:       score,
		Description: fmt.Sprintf("Evaluates the longevity and well-being of the bride. Forward count: %d", count),
	}
}

func checkYoniPorutham(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	brideYoni := nakshatraYoni[brideNak]
	groomYoni := nakshatraYoni[groomNak]

	var result models.MatchFactorResult
	var score float64
	switch {
	case yoniHostile(brideYoni.animal, groomYoni.animal):
		result, score = models.FactorFail, 0.0
	case brideYoni.animal == groomYoni.animal:
		result, score = models.FactorPass, 1.0
	default:
		result, score = models.FactorPass, 0.7
	}

	return models.PoruthamCheck{
		Name:      "Yoni",
		TamilName: "யோனி",
		Result:    result,
		Score:     score,
		Description: fmt.Sprintf("Bride: %s, Groom: %s. Evaluates physical compatibility.",
			brideYoni.animal, groomYoni.animal),
	}
}

func checkRashiPorutham(brideRashi, groomRashi models.Rashi) models.PoruthamCheck {
	count := posMod(int(groomRashi)-int(brideRashi), 12) + 1

	var result models.MatchFactorResult
	var score float64
	switch {
	case count == 6 || count == 8:
		result, score = models.FactorFail, 0.0
	case count == 1 || count == 5 || count == 7 || count == 9:
		result, score = models.FactorPass, 1.0
	default:
		result, score = models.FactorPass, 0.8
	}

	return models.PoruthamCheck{
		Name:        "Rashi",
		TamilName:   "ராசி",
		Result:      result,
		Score:       score,
		Description: fmt.Sprintf("Moon sign relationship. Count from bride to groom: %d", count),
	}
}

func checkRasiyathipathi(brideRashi, groomRashi models.Rashi) models.PoruthamCheck {
	brideLord := brideRashi.Lord()
	groomLord := groomRashi.Lord()

	forward := lordFriendship[brideLord][groomLord] > 0
	backward := lordFriendship[groomLord][brideLord] > 0

	var result models.MatchFactorResult
	var score float64
	switch {
	case brideLord == groomLord:
		result, score = models.FactorPass, 1.0
	case forward && backward:
		result, score = models.FactorPass, 1.0
	case forward || backward:
		result, score = models.FactorPartial, 0.5
	default:
		result, score = models.FactorFail, 0.0
	}

	return models.PoruthamCheck{
		Name:        "Rasiyathipathi",
		TamilName:   "ராசியாதிபதி",
		Result:      result,
		Score:       score,
		Description: fmt.Sprintf("Sign lords - Bride: %s, Groom: %s", brideLord, groomLord),
	}
}

func checkVasya(brideRashi, groomRashi models.Rashi) models.PoruthamCheck {
	brideType := vashyaTypes[brideRashi]
	groomType := vashyaTypes[groomRashi]

	vasyaCompat := map[[2]string]float64{
		{"Chatushpad", "Chatushpad"}: 1.0,
		{"Dwipad", "Dwipad"}:         1.0,
		{"Dwipad", "Chatushpad"}:     0.5,
		{"Jalachara", "Jalachara"}:   1.0,
		{"Keeta", "Keeta"}:           1.0,
	}

	score, ok := vasyaCompat[[2]string{brideType, groomType}]
	if !ok {
		if score, ok = vasyaCompat[[2]string{groomType, brideType}]; !ok {
			score = 0.25
		}
	}

	result := models.FactorFail
	if score >= 0.5 {
		result = models.FactorPass
	}
	return models.PoruthamCheck{
		Name:        "Vasya",
		TamilName:   "வஸ்யம்",
		Result:      result,
		Score:       score,
		Description: fmt.Sprintf("Mutual attraction - Bride: %s, Groom: %s", brideType, groomType),
	}
}

func checkRajju(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	brideRajju := rajjuOf(brideNak)
	groomRajju := rajjuOf(groomNak)

	check := models.PoruthamCheck{
		Name:      "Rajju",
		TamilName: "ரஜ்ஜு",
		Essential: true,
	}
	if brideRajju == groomRajju {
		check.Result = models.FactorFail
		check.Score = 0.0
		check.Description = fmt.Sprintf("Same Rajju (%s) - Inauspicious. May indicate difficulties.", brideRajju)
	} else {
		check.Result = models.FactorPass
		check.Score = 1.0
		check.Description = fmt.Sprintf("Different Rajju (Bride: %s, Groom: %s) - Auspicious", brideRajju, groomRajju)
	}
	return check
}

func checkVedha(brideNak, groomNak models.Nakshatra) models.PoruthamCheck {
	isVedha := false
	for _, pair := range vedhaPairs {
		if (brideNak == pair[0] && groomNak == pair[1]) || (groomNak == pair[0] && brideNak == pair[1]) {
			isVedha = true
			break
		}
	}

	check := models.PoruthamCheck{
		Name:      "Vedha",
		TamilName: "வேதை",
		Essential: true,
	}
	if isVedha {
		check.Result = models.FactorFail
		check.Score = 0.0
		check.Description = "Vedha exists between the nakshatras - Strong affliction"
	} else {
		check.Result = models.FactorPass
		check.Score = 1.0
		check.Description = "No Vedha - Clear of mutual affliction"
	}
	return check
}

const ashtakootaMaxPoints = 36

// CalculateAshtakoota оценивает восемь кут на 36 баллов. Отмена нади
// доши при общем знаке восстанавливает фиксированные 4 балла, после
// чего процент и рекомендация пересчитываются.
func CalculateAshtakoota(bride, groom models.MatchParty) (*models.AshtakootaResult, error) {
	if err := validateParties(bride, groom); err != nil {
		return nil, err
	}

	kootas := []models.KootaScore{
		varnaKoota(bride.Rashi, groom.Rashi),
		vashyaKoota(bride.Rashi, groom.Rashi),
		taraKoota(bride.Nakshatra, groom.Nakshatra),
		yoniKoota(bride.Nakshatra, groom.Nakshatra),
		grahaMaitriKoota(bride.Rashi, groom.Rashi),
		ganaKoota(bride.Nakshatra, groom.Nakshatra),
		bhakootKoota(bride.Rashi, groom.Rashi),
		nadiKoota(bride.Nakshatra, groom.Nakshatra),
	}
	bhakoot := &kootas[6]
	nadi := &kootas[7]

	nadiDosha := nadi.Points == 0
	bhakootDosha := bhakoot.Points == 0

	var exceptions []string
	if nadiDosha && bride.Rashi == groom.Rashi {
		nadi.Points = 4.0
		nadiDosha = false
		if bride.Nakshatra != groom.Nakshatra {
			exceptions = append(exceptions, "Nadi dosha cancelled: same rashi, different nakshatra")
		} else {
			exceptions = append(exceptions, "Nadi dosha cancelled: same rashi and nakshatra")
		}
	}

	var total float64
	for _, k := range kootas {
		total += k.Points
	}
	percentage := total / ashtakootaMaxPoints * 100

	var recommendation string
	switch {
	case percentage >= 75:
		recommendation = "Excellent Match - Highly recommended"
	case percentage >= 60:
		recommendation = "Good Match - Compatible with minor adjustments"
	case percentage >= 50:
		recommendation = "Average Match - Some challenges expected"
	case percentage >= 36:
		recommendation = "Below Average - Significant compatibility issues"
	default:
		recommendation = "Not Recommended - Major incompatibilities"
	}
	if nadiDosha && bhakootDosha {
		recommendation = "Caution Advised - Both Nadi and Bhakoot doshas present"
	}

	return &models.AshtakootaResult{
		Kootas:         kootas,
		TotalPoints:    total,
		MaxPoints:      ashtakootaMaxPoints,
		Percentage:     percentage,
		Recommendation: recommendation,
		NadiDosha:      nadiDosha,
		BhakootDosha:   bhakootDosha,
		Exceptions:     exceptions,
	}, nil
}

// CalculateCompatibility считает обе системы для одной пары.
func CalculateCompatibility(bride, groom models.MatchParty) (*models.CompatibilityResult, error) {
	porutham, err := CalculatePorutham(bride, groom)
	if err != nil {
		return nil, err
	}
	ashtakoota, err := CalculateAshtakoota(bride, groom)
	if err != nil {
		return nil, err
	}
	return &models.CompatibilityResult{
		Bride:      bride,
		Groom:      groom,
		Porutham:   *porutham,
		Ashtakoota: *ashtakoota,
	}, nil
}

func varnaKoota(brideRashi, groomRashi models.Rashi) models.KootaScore {
	brideVarna := rashiVarna[brideRashi]
	groomVarna := rashiVarna[groomRashi]

	points := 0.0
	if groomVarna >= brideVarna {
		points = 1.0
	}
	return models.KootaScore{
		Name:        "Varna",
		HindiName:   "वर्ण",
		MaxPoints:   1,
		Points:      points,
		Description: "Spiritual and ego compatibility",
		Details: map[string]interface{}{
			"bride_varna": varnaNames[brideVarna],
			"groom_varna": varnaNames[groomVarna],
		},
	}
}

func vashyaKoota(brideRashi, groomRashi models.Rashi) models.KootaScore {
	brideType := vashyaTypes[brideRashi]
	groomType := vashyaTypes[groomRashi]

	var points float64
	switch {
	case brideType == groomType:
		points = 2.0
	case (brideType == "Dwipad" && groomType == "Chatushpad") ||
		(brideType == "Chatushpad" && groomType == "Dwipad"):
		points = 1.0
	case brideType == "Keeta" || groomType == "Keeta":
		points = 0.0
	default:
		points = 0.5
	}

	return models.KootaScore{
		Name:        "Vashya",
		HindiName:   "वश्य",
		MaxPoints:   2,
		Points:      points,
		Description: "Mutual attraction and influence",
		Details: map[string]interface{}{
			"bride_type": brideType,
			"groom_type": groomType,
		},
	}
}

func taraKoota(brideNak, groomNak models.Nakshatra) models.KootaScore {
	count1 := nakshatraCount(groomNak, brideNak)
	count2 := nakshatraCount(brideNak, groomNak)

	tara1 := (count1-1)%9 + 1
	tara2 := (count2-1)%9 + 1

	bad := map[int]bool{3: true, 5: true, 7: true}

	var points float64
	switch {
	case !bad[tara1] && !bad[tara2]:
		points = 3.0
	case bad[tara1] && bad[tara2]:
		points = 0.0
	default:
		points = 1.5
	}

	return models.KootaScore{
		Name:        "Tara",
		HindiName:   "तारा",
		MaxPoints:   3,
		Points:      points,
		Description: "Birth star compatibility and destiny",
		Details: map[string]interface{}{
			"tara_from_groom": tara1,
			"tara_from_bride": tara2,
		},
	}
}

func yoniKoota(brideNak, groomNak models.Nakshatra) models.KootaScore {
	brideYoni := nakshatraYoni[brideNak]
	groomYoni := nakshatraYoni[groomNak]

	var points float64
	switch {
	case yoniHostile(brideYoni.animal, groomYoni.animal):
		points = 0.0
	case brideYoni.animal == groomYoni.animal && brideYoni.gender != groomYoni.gender:
		points = 4.0
	case brideYoni.animal == groomYoni.animal:
		points = 3.0
	default:
		points = 2.0
	}

	return models.KootaScore{
		Name:        "Yoni",
		HindiName:   "योनि",
		MaxPoints:   4,
		Points:      points,
		Description: "Physical and sexual compatibility",
		Details: map[string]interface{}{
			"bride_yoni": fmt.Sprintf("%s (%s)", brideYoni.animal, brideYoni.gender),
			"groom_yoni": fmt.Sprintf("%s (%s)", groomYoni.animal, groomYoni.gender),
		},
	}
}

func grahaMaitriKoota(brideRashi, groomRashi models.Rashi) models.KootaScore {
	brideLord := brideRashi.Lord()
	groomLord := groomRashi.Lord()

	var points float64
	if brideLord == groomLord {
		points = 5.0
	} else {
		points = lordFriendship[brideLord][groomLord]
		if p := lordFriendship[groomLord][brideLord]; p > points {
			points = p
		}
	}

	return models.KootaScore{
		Name:        "Graha Maitri",
		HindiName:   "ग्रह मैत्री",
		MaxPoints:   5,
		Points:      points,
		Description: "Mental compatibility and friendship",
		Details: map[string]interface{}{
			"bride_lord": brideLord.String(),
			"groom_lord": groomLord.String(),
		},
	}
}

func ganaKoota(brideNak, groomNak models.Nakshatra) models.KootaScore {
	brideGana := nakshatraGana[brideNak]
	groomGana := nakshatraGana[groomNak]

	ganaMatrix := map[[2]int]float64{
		{1, 1}: 6, {1, 2}: 5, {1, 3}: 1,
		{2, 1}: 3, {2, 2}: 6, {2, 3}: 0,
		{3, 1}: 1, {3, 2}: 0, {3, 3}: 6,
	}

	return models.KootaScore{
		Name:        "Gana",
		HindiName:   "गण",
		MaxPoints:   6,
		Points:      ganaMatrix[[2]int{brideGana, groomGana}],
		Description: "Temperament and character compatibility",
		Details: map[string]interface{}{
			"bride_gana": ganaNames[brideGana],
			"groom_gana": ganaNames[groomGana],
		},
	}
}

func bhakootKoota(brideRashi, groomRashi models.Rashi) models.KootaScore {
	count := posMod(int(groomRashi)-int(brideRashi), 12) + 1
	reverse := posMod(int(brideRashi)-int(groomRashi), 12) + 1

	badPairs := map[[2]int]bool{
		{2, 12}: true,
		{12, 2}: true,
		{5, 9}:  true,
		{9, 5}:  true,
		{6, 8}:  true,
		{8, 6}:  true,
	}

	points, dosha := 7.0, false
	if badPairs[[2]int{count, reverse}] || count == 6 || count == 8 {
		points, dosha = 0.0, true
	}

	return models.KootaScore{
		Name:        "Bhakoot",
		HindiName:   "भकूट",
		MaxPoints:   7,
		Points:      points,
		Description: "Family welfare and financial prosperity",
		Details: map[string]interface{}{
			"position":         count,
			"reverse_position": reverse,
			"has_dosha":        dosha,
		},
	}
}

func nadiKoota(brideNak, groomNak models.Nakshatra) models.KootaScore {
	brideNadi := nakshatraNadi[brideNak]
	groomNadi := nakshatraNadi[groomNak]

	points, dosha := 8.0, false
	if brideNadi == groomNadi {
		points, dosha = 0.0, true
	}

	return models.KootaScore{
		Name:        "Nadi",
		HindiName:   "नाड़ी",
		MaxPoints:   8,
		Points:      points,
		Description: "Health, genes, and progeny",
		Details: map[string]interface{}{
			"bride_nadi": nadiNames[brideNadi],
			"groom_nadi": nadiNames[groomNadi],
			"has_dosha":  dosha,
		},
	}
}

// NakshatraMeta собирает справочные группировки стоянки для витрин.
type NakshatraMeta struct {
	Number models.Nakshatra `json:"number"`
	Name   string           `json:"name"`
	Gana   string           `json:"gana"`
	Yoni   string           `json:"yoni"`
	Nadi   string           `json:"nadi"`
	Rajju  string           `json:"rajju"`
}

// NakshatraMatchMeta возвращает метаданные совместимости стоянки.
func NakshatraMatchMeta(n models.Nakshatra) (NakshatraMeta, bool) {
	if !n.Valid() {
		return NakshatraMeta{}, false
	}
	y := nakshatraYoni[n]
	return NakshatraMeta{
		Number: n,
		Name:   n.Name(),
		Gana:   ganaNames[nakshatraGana[n]],
		Yoni:   fmt.Sprintf("%s (%s)", y.animal, y.gender),
		Nadi:   nadiNames[nakshatraNadi[n]],
		Rajju:  rajjuOf(n),
	}, true
}
