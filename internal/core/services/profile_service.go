package services

import (
	"math"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
)

// Anchors for the circadian alignment score. Fixed constants, not tunable
// per profile.
const (
	optimalBedtimeHour = 22
	optimalWakeHour    = 6
)

// ProfileService evaluates a validated sleep profile. It holds no state;
// every call is a pure function of its input.
type ProfileService struct{}

func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Evaluate computes the derived metrics and the recommendation list for a
// profile that already passed domain.NewSleepProfile validation.
func (s *ProfileService) Evaluate(profile *domain.SleepProfile) (*domain.SleepMetrics, []domain.Recommendation) {
	metrics := s.CalculateMetrics(profile)
	return metrics, s.Recommendations(profile)
}

// CalculateMetrics derives duration, debt, efficiency and circadian
// alignment. Duration is whole-hour arithmetic over the hour components
// only: 22:45→06:15 and 22:00→06:00 both yield 8. Kept that way on purpose,
// existing clients depend on it.
func (s *ProfileService) CalculateMetrics(profile *domain.SleepProfile) *domain.SleepMetrics {
	bedtimeHour := profile.BedtimeClock().Hour
	wakeHour := profile.WakeClock().Hour

	var duration int
	if wakeHour < bedtimeHour {
		duration = (24 - bedtimeHour) + wakeHour
	} else {
		duration = wakeHour - bedtimeHour
	}

	return &domain.SleepMetrics{
		SleepDuration:      duration,
		SleepDebt:          math.Max(0, profile.SleepGoal-float64(duration)),
		SleepEfficiency:    math.Min(100, float64(duration)/profile.SleepGoal*100),
		CircadianAlignment: circadianAlignment(bedtimeHour, wakeHour),
	}
}

// circadianAlignment scores how close the schedule sits to the 22:00/06:00
// anchors, 10 points per hour of drift on each side. Both partial scores are
// multiples of 10, so the halved sum is always exact.
func circadianAlignment(bedtimeHour, wakeHour int) int {
	bedtimeScore := max(0, 100-abs(bedtimeHour-optimalBedtimeHour)*10)
	wakeScore := max(0, 100-abs(wakeHour-optimalWakeHour)*10)

	return (bedtimeScore + wakeScore) / 2
}

// Recommendations emits the two base entries, then one entry per recognized
// issue tag in input order. Unrecognized tags are skipped without error so
// clients can send future tags freely; duplicate tags duplicate their entry.
func (s *ProfileService) Recommendations(profile *domain.SleepProfile) []domain.Recommendation {
	bedtime := profile.BedtimeClock()

	recommendations := []domain.Recommendation{
		{
			ID:          "wind-down",
			Title:       "Wind-down Routine",
			Description: "Begin relaxing activities 1-2 hours before bed",
			Time:        bedtime.Offset(-2, 0).String(),
			Priority:    domain.PriorityHigh,
			Category:    domain.CategoryRoutine,
		},
		{
			ID:          "screen-cutoff",
			Title:       "Digital Sunset",
			Description: "Turn off screens and blue light devices",
			Time:        bedtime.Offset(-1, 0).String(),
			Priority:    domain.PriorityHigh,
			Category:    domain.CategoryEnvironment,
		},
	}

	for _, issue := range profile.SleepIssues {
		switch issue {
		case "anxiety":
			recommendations = append(recommendations, domain.Recommendation{
				ID:          "anxiety-relief",
				Title:       "Anxiety Management",
				Description: "Practice deep breathing or meditation",
				Time:        bedtime.Offset(-1, 30).String(),
				Priority:    domain.PriorityHigh,
				Category:    domain.CategoryMentalHealth,
			})
		case "temperature":
			recommendations = append(recommendations, domain.Recommendation{
				ID:          "temperature-control",
				Title:       "Temperature Optimization",
				Description: "Set bedroom to 65-68°F",
				Time:        bedtime.Offset(-1, 0).String(),
				Priority:    domain.PriorityHigh,
				Category:    domain.CategoryEnvironment,
			})
		}
	}

	return recommendations
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
