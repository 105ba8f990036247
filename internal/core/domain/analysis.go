package domain

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	CategoryRoutine      = "routine"
	CategoryEnvironment  = "environment"
	CategoryMentalHealth = "mental-health"
)

type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type AgeDistribution struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

// DatasetAnalysis is the global descriptive view over every record. Averages
// are rounded to 2 decimals, the mean age to 1.
type DatasetAnalysis struct {
	TotalRecords        int             `json:"total_records"`
	AverageSleepHours   float64         `json:"average_sleep_hours"`
	AverageSleepQuality float64         `json:"average_sleep_quality"`
	AverageProductivity float64         `json:"average_productivity"`
	AverageMood         float64         `json:"average_mood"`
	AverageStress       float64         `json:"average_stress"`
	SleepHoursRange     ValueRange      `json:"sleep_hours_range"`
	GenderDistribution  map[string]int  `json:"gender_distribution"`
	AgeDistribution     AgeDistribution `json:"age_distribution"`
}

// CohortFilter selects records within 5 years of Age whose gender matches
// Gender case-insensitively. The literal "all" (any case) disables the
// gender filter.
type CohortFilter struct {
	Age    int
	Gender string
}

type CohortInsights struct {
	AverageSleepHours   float64  `json:"average_sleep_hours"`
	AverageSleepQuality float64  `json:"average_sleep_quality"`
	AverageProductivity float64  `json:"average_productivity"`
	AverageMood         float64  `json:"average_mood"`
	AverageStress       float64  `json:"average_stress"`
	SampleSize          int      `json:"sample_size"`
	Recommendations     []string `json:"recommendations"`
}

// SleepMetrics are the derived values for one evaluated profile. Duration is
// an integer hour count computed from the hour components only; minutes do
// not influence duration or efficiency.
type SleepMetrics struct {
	SleepDuration      int     `json:"sleep_duration"`
	SleepDebt          float64 `json:"sleep_debt"`
	SleepEfficiency    float64 `json:"sleep_efficiency"`
	CircadianAlignment int     `json:"circadian_alignment"`
}

type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}
