package models

// Body обозначает одну из девяти грах.
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

var bodyData = [...]struct {
	english  string
	sanskrit string
	symbol   string
}{
	{"Sun", "Surya", "☉"},
	{"Moon", "Chandra", "☽"},
	{"Mars", "Mangal", "♂"},
	{"Mercury", "Budha", "☿"},
	{"Jupiter", "Guru", "♃"},
	{"Venus", "Shukra", "♀"},
	{"Saturn", "Shani", "♄"},
	{"Rahu", "Rahu", "☊"},
	{"Ketu", "Ketu", "☋"},
}

func (b Body) String() string {
	if b < Sun || b > Ketu {
		return "Unknown"
	}
	return bodyData[b].english
}

func (b Body) Sanskrit() string {
	if b < Sun || b > Ketu {
		return "Unknown"
	}
	return bodyData[b].sanskrit
}

func (b Body) Symbol() string {
	if b < Sun || b > Ketu {
		return "?"
	}
	return bodyData[b].symbol
}

// ChartBodies возвращает порядок наваграх в карте.
func ChartBodies() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

// Rashi обозначает знак сидерического зодиака, 1..12.
type Rashi int

var rashiData = [...]struct {
	name    string
	english string
	element string
	lord    Body
	symbol  string
}{
	{"Mesha", "Aries", "Fire", Mars, "♈"},
	{"Vrishabha", "Taurus", "Earth", Venus, "♉"},
	{"Mithuna", "Gemini", "Air", Mercury, "♊"},
	{"Karka", "Cancer", "Water", Moon, "♋"},
	{"Simha", "Leo", "Fire", Sun, "♌"},
	{"Kanya", "Virgo", "Earth", Mercury, "♍"},
	{"Tula", "Libra", "Air", Venus, "♎"},
	{"Vrishchika", "Scorpio", "Water", Mars, "♏"},
	{"Dhanu", "Sagittarius", "Fire", Jupiter, "♐"},
	{"Makara", "Capricorn", "Earth", Saturn, "♑"},
	{"Kumbha", "Aquarius", "Air", Saturn, "♒"},
	{"Meena", "Pisces", "Water", Jupiter, "♓"},
}

func (r Rashi) Valid() bool { return r >= 1 && r <= 12 }

func (r Rashi) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rashiData[r-1].name
}

func (r Rashi) English() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rashiData[r-1].english
}

func (r Rashi) Element() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rashiData[r-1].element
}

func (r Rashi) Lord() Body {
	if !r.Valid() {
		return Sun
	}
	return rashiData[r-1].lord
}

func (r Rashi) Symbol() string {
	if !r.Valid() {
		return "?"
	}
	return rashiData[r-1].symbol
}

// Nakshatra обозначает лунную стоянку, 1..27.
type Nakshatra int

var nakshatraData = [...]struct {
	name   string
	deity  string
	ruler  Body
	symbol string
}{
	{"Ashwini", "Ashwini Kumaras", Ketu, "Horse head"},
	{"Bharani", "Yama", Venus, "Yoni"},
	{"Krittika", "Agni", Sun, "Razor"},
	{"Rohini", "Brahma", Moon, "Chariot"},
	{"Mrigashira", "Soma", Mars, "Deer head"},
	{"Ardra", "Rudra", Rahu, "Teardrop"},
	{"Punarvasu", "Aditi", Jupiter, "Bow"},
	{"Pushya", "Brihaspati", Saturn, "Flower"},
	{"Ashlesha", "Sarpa", Mercury, "Serpent"},
	{"Magha", "Pitris", Ketu, "Throne"},
	{"Purva Phalguni", "Bhaga", Venus, "Hammock"},
	{"Uttara Phalguni", "Aryaman", Sun, "Bed"},
	{"Hasta", "Savitar", Moon, "Hand"},
	{"Chitra", "Vishwakarma", Mars, "Pearl"},
	{"Swati", "Vayu", Rahu, "Coral"},
	{"Vishakha", "Indra-Agni", Jupiter, "Archway"},
	{"Anuradha", "Mitra", Saturn, "Lotus"},
	{"Jyeshtha", "Indra", Mercury, "Earring"},
	{"Mula", "Nirrti", Ketu, "Root"},
	{"Purva Ashadha", "Apas", Venus, "Fan"},
	{"Uttara Ashadha", "Vishvedevas", Sun, "Tusk"},
	{"Shravana", "Vishnu", Moon, "Ear"},
	{"Dhanishta", "Vasus", Mars, "Drum"},
	{"Shatabhisha", "Varuna", Rahu, "Circle"},
	{"Purva Bhadrapada", "Aja Ekapada", Jupiter, "Sword"},
	{"Uttara Bhadrapada", "Ahir Budhnya", Saturn, "Twin"},
	{"Revati", "Pushan", Mercury, "Fish"},
}

func (n Nakshatra) Valid() bool { return n >= 1 && n <= 27 }

func (n Nakshatra) Name() string {
	if !n.Valid() {
		return "Unknown"
	}
	return nakshatraData[n-1].name
}

func (n Nakshatra) Deity() string {
	if !n.Valid() {
		return "Unknown"
	}
	return nakshatraData[n-1].deity
}

func (n Nakshatra) Ruler() Body {
	if !n.Valid() {
		return Sun
	}
	return nakshatraData[n-1].ruler
}

func (n Nakshatra) Symbol() string {
	if !n.Valid() {
		return "?"
	}
	return nakshatraData[n-1].symbol
}

// AyanamsaScheme именует модель прецессионной поправки.
type AyanamsaScheme string

const (
	AyanamsaLahiri           AyanamsaScheme = "lahiri"
	AyanamsaRaman            AyanamsaScheme = "raman"
	AyanamsaKrishnamurti     AyanamsaScheme = "krishnamurti"
	AyanamsaYukteshwar       AyanamsaScheme = "yukteshwar"
	AyanamsaTrueChitrapaksha AyanamsaScheme = "true_chitrapaksha"
)

var ayanamsaTitles = map[AyanamsaScheme]string{
	AyanamsaLahiri:           "Lahiri (Chitrapaksha)",
	AyanamsaRaman:            "B.V. Raman",
	AyanamsaKrishnamurti:     "Krishnamurti (KP)",
	AyanamsaYukteshwar:       "Sri Yukteshwar",
	AyanamsaTrueChitrapaksha: "True Chitrapaksha",
}

// ParseAyanamsa возвращает lahiri и ok=false для неизвестного имени,
// вызывающий сам решает, логировать ли откат.
func ParseAyanamsa(s string) (AyanamsaScheme, bool) {
	scheme := AyanamsaScheme(s)
	if _, known := ayanamsaTitles[scheme]; known {
		return scheme, true
	}
	return AyanamsaLahiri, false
}

func (a AyanamsaScheme) Title() string {
	if t, ok := ayanamsaTitles[a]; ok {
		return t
	}
	return ayanamsaTitles[AyanamsaLahiri]
}

func AyanamsaSchemes() []AyanamsaScheme {
	return []AyanamsaScheme{
		AyanamsaLahiri,
		AyanamsaRaman,
		AyanamsaKrishnamurti,
		AyanamsaYukteshwar,
		AyanamsaTrueChitrapaksha,
	}
}
