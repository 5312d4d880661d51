package models

import "time"

// Paksha обозначает половину лунного месяца.
type Paksha string

const (
	PakshaShukla  Paksha = "Shukla"
	PakshaKrishna Paksha = "Krishna"
)

// Tithi обозначает лунный день, 1..30.
type Tithi int

var tithiNames = [...]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

func (t Tithi) Valid() bool { return t >= 1 && t <= 30 }

func (t Tithi) Name() string {
	if !t.Valid() {
		return "Unknown"
	}
	return tithiNames[t-1]
}

func (t Tithi) Paksha() Paksha {
	if t <= 15 {
		return PakshaShukla
	}
	return PakshaKrishna
}

// Yoga обозначает комбинацию долгот Солнца и Луны, 1..27.
type Yoga int

// YogaNature задаёт классификацию йоги из фиксированной таблицы.
type YogaNature string

const (
	YogaAuspicious   YogaNature = "Auspicious"
	YogaInauspicious YogaNature = "Inauspicious"
)

var yogaData = [...]struct {
	name   string
	nature YogaNature
}{
	{"Vishkambha", YogaInauspicious}, {"Priti", YogaAuspicious},
	{"Ayushman", YogaAuspicious}, {"Saubhagya", YogaAuspicious},
	{"Shobhana", YogaAuspicious}, {"Atiganda", YogaInauspicious},
	{"Sukarman", YogaAuspicious}, {"Dhriti", YogaAuspicious},
	{"Shula", YogaInauspicious}, {"Ganda", YogaInauspicious},
	{"Vriddhi", YogaAuspicious}, {"Dhruva", YogaAuspicious},
	{"Vyaghata", YogaInauspicious}, {"Harshana", YogaAuspicious},
	{"Vajra", YogaInauspicious}, {"Siddhi", YogaAuspicious},
	{"Vyatipata", YogaInauspicious}, {"Variyan", YogaAuspicious},
	{"Parigha", YogaInauspicious}, {"Shiva", YogaAuspicious},
	{"Siddha", YogaAuspicious}, {"Sadhya", YogaAuspicious},
	{"Shubha", YogaAuspicious}, {"Shukla", YogaAuspicious},
	{"Brahma", YogaAuspicious}, {"Indra", YogaAuspicious},
	{"Vaidhriti", YogaInauspicious},
}

func (y Yoga) Valid() bool { return y >= 1 && y <= 27 }

func (y Yoga) Name() string {
	if !y.Valid() {
		return "Unknown"
	}
	return yogaData[y-1].name
}

func (y Yoga) Nature() YogaNature {
	if !y.Valid() {
		return YogaInauspicious
	}
	return yogaData[y-1].nature
}

// KaranaType обозначает один из 11 типов караны.
type KaranaType int

// KaranaNature различает подвижные и фиксированные караны.
type KaranaNature string

const (
	KaranaMovable KaranaNature = "Movable"
	KaranaFixed   KaranaNature = "Fixed"
)

var karanaData = [...]struct {
	name   string
	nature KaranaNature
}{
	{"Bava", KaranaMovable}, {"Balava", KaranaMovable},
	{"Kaulava", KaranaMovable}, {"Taitila", KaranaMovable},
	{"Gara", KaranaMovable}, {"Vanija", KaranaMovable},
	{"Vishti", KaranaMovable}, {"Shakuni", KaranaFixed},
	{"Chatushpada", KaranaFixed}, {"Naga", KaranaFixed},
	{"Kimstughna", KaranaFixed},
}

func (k KaranaType) Valid() bool { return k >= 1 && k <= 11 }

func (k KaranaType) Name() string {
	if !k.Valid() {
		return "Unknown"
	}
	return karanaData[k-1].name
}

func (k KaranaType) Nature() KaranaNature {
	if !k.Valid() {
		return KaranaMovable
	}
	return karanaData[k-1].nature
}

// Vaara обозначает день недели, воскресенье = 0.
type Vaara int

var vaaraData = [...]struct {
	name string
	lord Body
}{
	{"Ravivara", Sun},
	{"Somavara", Moon},
	{"Mangalavara", Mars},
	{"Budhavara", Mercury},
	{"Guruvara", Jupiter},
	{"Shukravara", Venus},
	{"Shanivara", Saturn},
}

func (v Vaara) Valid() bool { return v >= 0 && v <= 6 }

func (v Vaara) Name() string {
	if !v.Valid() {
		return "Unknown"
	}
	return vaaraData[v].name
}

func (v Vaara) Lord() Body {
	if !v.Valid() {
		return Sun
	}
	return vaaraData[v].lord
}

var masaNames = [...]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwin", "Kartik",
	"Margashirsha", "Pausha", "Magha", "Phalguna",
}

// MasaFromMoonRashi возвращает лунный месяц по знаку Луны (упрощённая привязка).
func MasaFromMoonRashi(moonRashi Rashi) string {
	idx := (int(moonRashi) - 1) % 12
	if idx < 0 {
		idx += 12
	}
	return masaNames[idx]
}

var samvatsaraNames = [...]string{
	"Prabhava", "Vibhava", "Shukla", "Pramodoota", "Prajothpatti",
	"Angirasa", "Srimukha", "Bhava", "Yuva", "Dhatru",
	"Ishvara", "Bahudhanya", "Pramathi", "Vikrama", "Vrusha",
	"Chitrabhanu", "Svabhanu", "Tarana", "Parthiva", "Vyaya",
	"Sarvajith", "Sarvadhari", "Virodhi", "Vikruthi", "Khara",
	"Nandana", "Vijaya", "Jaya", "Manmatha", "Durmukhi",
	"Hevilambi", "Vilambi", "Vikari", "Sharvari", "Plava",
	"Shubhakruthu", "Shobhakruthu", "Krodhi", "Vishvavasu", "Parabhava",
	"Plavanga", "Keelaka", "Saumya", "Sadharana", "Virodhikruthu",
	"Paridhavi", "Pramadeecha", "Ananda", "Rakshasa", "Nala",
	"Pingala", "Kalayukthi", "Siddharthi", "Raudra", "Durmathi",
	"Dundubhi", "Rudhirodgari", "Raktakshi", "Krodhana", "Akshaya",
}

// SamvatsaraForYear возвращает имя года 60-летнего цикла, 1987 = Prabhava.
func SamvatsaraForYear(year int) string {
	idx := ((year-1987)%60 + 60) % 60
	return samvatsaraNames[idx]
}

type TithiDetail struct {
	Number         Tithi     `json:"number"`
	Name           string    `json:"name"`
	Paksha         Paksha    `json:"paksha"`
	PercentElapsed float64   `json:"percent_elapsed"`
	EndTime        time.Time `json:"end_time"`
}

type NakshatraDetail struct {
	Number  Nakshatra `json:"number"`
	Name    string    `json:"name"`
	Ruler   string    `json:"ruler"`
	Pada    int       `json:"pada"`
	EndTime time.Time `json:"end_time"`
}

type YogaDetail struct {
	Number  Yoga       `json:"number"`
	Name    string     `json:"name"`
	Nature  YogaNature `json:"nature"`
	EndTime time.Time  `json:"end_time"`
}

type KaranaDetail struct {
	// Slot нумерует полутитхи внутри месяца, 1..60.
	Slot   int          `json:"slot"`
	Number KaranaType   `json:"number"`
	Name   string       `json:"name"`
	Nature KaranaNature `json:"nature"`
}

type VaaraDetail struct {
	Number Vaara  `json:"number"`
	Name   string `json:"name"`
	Lord   string `json:"lord"`
}

type SunTimes struct {
	Sunrise   time.Time `json:"sunrise"`
	Sunset    time.Time `json:"sunset"`
	SolarNoon time.Time `json:"solar_noon"`
	// Estimated выставляется при откате на фиксированные 06:00/18:00.
	Estimated bool `json:"estimated,omitempty"`
}

func (s SunTimes) DayLength() time.Duration {
	return s.Sunset.Sub(s.Sunrise)
}

type MoonTimes struct {
	Moonrise *time.Time `json:"moonrise,omitempty"`
	Moonset  *time.Time `json:"moonset,omitempty"`
}

type InauspiciousPeriod struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Panchang собирает пять элементов календаря и тайминги для даты и места.
// Чистая функция входов, пригодна для кэширования по ключу
// (lat, lon, date, ayanamsa).
type Panchang struct {
	Date        time.Time      `json:"date"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	TZOffsetMin int            `json:"tz_offset_minutes"`
	Ayanamsa    AyanamsaScheme `json:"ayanamsa"`

	Tithi     TithiDetail     `json:"tithi"`
	Nakshatra NakshatraDetail `json:"nakshatra"`
	Yoga      YogaDetail      `json:"yoga"`
	Karana    KaranaDetail    `json:"karana"`
	Vaara     VaaraDetail     `json:"vaara"`

	Sun  SunTimes  `json:"sun"`
	Moon MoonTimes `json:"moon"`

	RahuKalam   InauspiciousPeriod `json:"rahu_kalam"`
	Yamagandam  InauspiciousPeriod `json:"yamagandam"`
	GulikaKalam InauspiciousPeriod `json:"gulika_kalam"`

	Masa       string `json:"masa"`
	Paksha     Paksha `json:"paksha"`
	Samvatsara string `json:"samvatsara"`
}

// PanchangDay хранит строку месячной сводки.
type PanchangDay struct {
	Date      time.Time `json:"date"`
	Tithi     string    `json:"tithi"`
	Paksha    Paksha    `json:"paksha"`
	Nakshatra string    `json:"nakshatra"`
	Yoga      string    `json:"yoga"`
	Karana    string    `json:"karana"`
	Vaara     string    `json:"vaara"`
	Sunrise   time.Time `json:"sunrise"`
	Sunset    time.Time `json:"sunset"`
}

// ChoghadiyaPeriod описывает один из восьми сегментов дня или ночи.
type ChoghadiyaPeriod struct {
	Name        string    `json:"name"`
	Nature      string    `json:"nature"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// HoraPeriod описывает планетарный час.
type HoraPeriod struct {
	Number      int       `json:"number"`
	Lord        string    `json:"lord"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Suitability string    `json:"suitability"`
}
