package models

import "time"

// EventType задаёт категорию события для поиска мухурты.
type EventType string

const (
	EventMarriage          EventType = "marriage"
	EventNamingCeremony    EventType = "naming_ceremony"
	EventGrihaPravesh      EventType = "griha_pravesh"
	EventBusinessOpening   EventType = "business_opening"
	EventTravel            EventType = "travel"
	EventSurgery           EventType = "surgery"
	EventVehiclePurchase   EventType = "vehicle_purchase"
	EventPropertyPurchase  EventType = "property_purchase"
	EventEngagement        EventType = "engagement"
	EventEducationStart    EventType = "education_start"
	EventJewelleryPurchase EventType = "jewellery_purchase"
	EventGeneralAuspicious EventType = "general_auspicious"
)

func EventTypes() []EventType {
	return []EventType{
		EventMarriage, EventNamingCeremony, EventGrihaPravesh,
		EventBusinessOpening, EventTravel, EventSurgery,
		EventVehiclePurchase, EventPropertyPurchase, EventEngagement,
		EventEducationStart, EventJewelleryPurchase, EventGeneralAuspicious,
	}
}

// ParseEventType принимает только известные категории.
func ParseEventType(s string) (EventType, bool) {
	for _, et := range EventTypes() {
		if string(et) == s {
			return et, true
		}
	}
	return EventGeneralAuspicious, false
}

// Quality задаёт ярус качества окна по итоговому баллу.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityModerate  Quality = "moderate"
	QualityPoor      Quality = "poor"
)

// QualityForScore: >=80 excellent, >=60 good, >=40 moderate, иначе poor.
func QualityForScore(score float64) Quality {
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	case score >= 40:
		return QualityModerate
	default:
		return QualityPoor
	}
}

// MuhuratWindow описывает найденное благоприятное окно. Не мутируется после выдачи.
type MuhuratWindow struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Quality Quality   `json:"quality"`
	Score   float64   `json:"score"`
	Event   EventType `json:"event_type"`

	Tithi     string `json:"tithi"`
	Nakshatra string `json:"nakshatra"`
	Yoga      string `json:"yoga"`
	Karana    string `json:"karana"`
	Vaara     string `json:"vaara"`

	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
	Warnings        []string `json:"warnings"`
}

// MuhuratQuery задаёт параметры поиска окон.
type MuhuratQuery struct {
	Event             EventType
	Start             time.Time
	End               time.Time
	Latitude          float64
	Longitude         float64
	TZOffsetMin       int
	Ayanamsa          AyanamsaScheme
	AvoidRahuKalam    bool
	AvoidYamagandam   bool
	ExcludeTithis     []int
	ExcludeNakshatras []int
	MaxResults        int
}

type MuhuratResult struct {
	Event       EventType       `json:"event_type"`
	SearchStart time.Time       `json:"search_start"`
	SearchEnd   time.Time       `json:"search_end"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Windows     []MuhuratWindow `json:"windows"`
	TotalFound  int             `json:"total_found"`
	Best        *MuhuratWindow  `json:"best_window,omitempty"`
	Filters     map[string]bool `json:"filters_applied"`
}
