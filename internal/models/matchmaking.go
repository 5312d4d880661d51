package models

// MatchFactorResult кодирует исход проверки одного фактора совместимости.
type MatchFactorResult string

const (
	FactorPass    MatchFactorResult = "pass"
	FactorFail    MatchFactorResult = "fail"
	FactorPartial MatchFactorResult = "partial"
)

// PoruthamCheck хранит результат одной из десяти порутх.
type PoruthamCheck struct {
	Name        string            `json:"name"`
	TamilName   string            `json:"tamil_name"`
	Result      MatchFactorResult `json:"result"`
	Score       float64           `json:"score"`
	Description string            `json:"description"`
	Essential   bool              `json:"essential"`
}

// PoruthamResult описывает южноиндийскую систему из десяти факторов.
// Провал любого essential-фактора блокирует рекомендацию целиком.
type PoruthamResult struct {
	Checks         []PoruthamCheck `json:"poruthams"`
	TotalMatched   int             `json:"total_matched"`
	TotalChecked   int             `json:"total_checked"`
	Percentage     float64         `json:"percentage"`
	Recommendation string          `json:"recommendation"`
	HasBlockers    bool            `json:"has_hard_blockers"`
	BlockerDetails []string        `json:"blocker_details"`
}

// KootaScore хранит балл одной куты аштакуты.
type KootaScore struct {
	Name        string                 `json:"name"`
	HindiName   string                 `json:"hindi_name"`
	MaxPoints   int                    `json:"max_points"`
	Points      float64                `json:"points"`
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details"`
}

// AshtakootaResult описывает североиндийскую систему, максимум 36 баллов.
type AshtakootaResult struct {
	Kootas         []KootaScore `json:"kootas"`
	TotalPoints    float64      `json:"total_points"`
	MaxPoints      int          `json:"max_points"`
	Percentage     float64      `json:"percentage"`
	Recommendation string       `json:"recommendation"`
	NadiDosha      bool         `json:"nadi_dosha"`
	BhakootDosha   bool         `json:"bhakoot_dosha"`
	Exceptions     []string     `json:"exceptions_applied"`
}

// MatchParty задаёт вход совместимости: стоянка и знак Луны.
type MatchParty struct {
	Nakshatra Nakshatra `json:"nakshatra"`
	Rashi     Rashi     `json:"rashi"`
}

// CompatibilityResult собирает обе системы разом.
type CompatibilityResult struct {
	Bride      MatchParty       `json:"bride"`
	Groom      MatchParty       `json:"groom"`
	Porutham   PoruthamResult   `json:"porutham"`
	Ashtakoota AshtakootaResult `json:"ashtakoota"`
}
