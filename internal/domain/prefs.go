package domain

// Dietary is the user's dietary preference. Unknown stored values fall back
// to DietNoPreference on load.
type Dietary string

const (
	DietNoPreference Dietary = "no-preference"
	DietNoRedMeat    Dietary = "no-red-meat"
	DietPescatarian  Dietary = "pescatarian"
	DietVegetarian   Dietary = "vegetarian"
)

// Valid reports whether d is one of the known dietary values.
func (d Dietary) Valid() bool {
	switch d {
	case DietNoPreference, DietNoRedMeat, DietPescatarian, DietVegetarian:
		return true
	}
	return false
}

// Comfort is the user's self-reported cooking comfort level.
type Comfort string

const (
	ComfortBeginner    Comfort = "beginner"
	ComfortSome        Comfort = "some-experience"
	ComfortComfortable Comfort = "comfortable"
)

// Valid reports whether c is one of the known comfort values.
func (c Comfort) Valid() bool {
	switch c {
	case ComfortBeginner, ComfortSome, ComfortComfortable:
		return true
	}
	return false
}

// Household size tiers. Stored values outside this range recover to the
// default on load.
const (
	HouseholdMin = 1
	HouseholdMax = 4
)

// Preferences is the singleton per-installation preference record.
type Preferences struct {
	Onboarded      bool    `json:"onboarded"`
	Dietary        Dietary `json:"dietary"`
	HouseholdSize  int     `json:"householdSize"`
	CookingComfort Comfort `json:"cookingComfort"`
}

// DefaultPreferences returns the hard-coded first-run preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Onboarded:      false,
		Dietary:        DietNoPreference,
		HouseholdSize:  2,
		CookingComfort: ComfortBeginner,
	}
}

// PreferencesPatch carries the fields set during onboarding. Nil fields are
// left at their current value when merged.
type PreferencesPatch struct {
	Dietary        *Dietary
	HouseholdSize  *int
	CookingComfort *Comfort
}

// LoadStatus tags how a store's durable record was obtained. All three
// behave identically to callers; the tag exists so the silent-recovery
// contract stays observable.
type LoadStatus int

const (
	// LoadFirstRun means no durable record existed yet.
	LoadFirstRun LoadStatus = iota
	// Loaded means the durable record parsed cleanly.
	Loaded
	// LoadRecovered means the durable record was present but malformed and
	// defaults were substituted.
	LoadRecovered
)

// String implements fmt.Stringer for log output.
func (s LoadStatus) String() string {
	switch s {
	case LoadFirstRun:
		return "first-run"
	case Loaded:
		return "loaded"
	case LoadRecovered:
		return "recovered"
	}
	return "unknown"
}
