package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
	"github.com/somnia-labs/sleep-insights-engine/internal/core/services"
)

func mustProfile(t *testing.T, in domain.ProfileInput) *domain.SleepProfile {
	t.Helper()

	p, err := domain.NewSleepProfile(in)
	require.NoError(t, err)
	return p
}

func strIn(s string) *string   { return &s }
func f64In(f float64) *float64 { return &f }

func TestProfileService_CalculateMetrics(t *testing.T) {
	svc := services.NewProfileService()

	t.Run("Success: Default profile hits every optimum", func(t *testing.T) {
		m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{}))

		assert.Equal(t, 8, m.SleepDuration)
		assert.Equal(t, 0.0, m.SleepDebt)
		assert.Equal(t, 100.0, m.SleepEfficiency)
		assert.Equal(t, 100, m.CircadianAlignment)
	})

	t.Run("Success: Overnight wraparound", func(t *testing.T) {
		m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:  strIn("23:00"),
			WakeTime: strIn("01:00"),
		}))

		assert.Equal(t, 2, m.SleepDuration)
	})

	t.Run("Edge Case: Same bedtime and wake hour is zero, not 24", func(t *testing.T) {
		m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:  strIn("22:00"),
			WakeTime: strIn("22:00"),
		}))

		assert.Equal(t, 0, m.SleepDuration)
	})

	t.Run("Edge Case: Minutes do not influence duration", func(t *testing.T) {
		// Known precision limitation kept for compatibility: duration is
		// whole-hour arithmetic, so 22:45→06:15 equals 22:00→06:00.
		aligned := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:  strIn("22:00"),
			WakeTime: strIn("06:00"),
		}))
		offset := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:  strIn("22:45"),
			WakeTime: strIn("06:15"),
		}))

		assert.Equal(t, aligned.SleepDuration, offset.SleepDuration)
		assert.Equal(t, aligned.SleepEfficiency, offset.SleepEfficiency)
	})

	t.Run("Success: Sleep debt floors at zero", func(t *testing.T) {
		m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:   strIn("22:00"),
			WakeTime:  strIn("08:00"),
			SleepGoal: f64In(7),
		}))

		assert.Equal(t, 10, m.SleepDuration)
		assert.Equal(t, 0.0, m.SleepDebt)
	})

	t.Run("Success: Efficiency caps at 100", func(t *testing.T) {
		m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:   strIn("22:00"),
			WakeTime:  strIn("08:00"),
			SleepGoal: f64In(8),
		}))

		assert.Equal(t, 100.0, m.SleepEfficiency)
	})

	t.Run("Success: Short sleeper accumulates debt and partial efficiency", func(t *testing.T) {
		m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
			Bedtime:  strIn("02:00"),
			WakeTime: strIn("06:00"),
		}))

		assert.Equal(t, 4, m.SleepDuration)
		assert.Equal(t, 4.0, m.SleepDebt)
		assert.Equal(t, 50.0, m.SleepEfficiency)
		// Drift is plain hour subtraction, so 02:00 sits 20h from the 22:00
		// anchor and its score bottoms out at 0; wake is on anchor.
		assert.Equal(t, 50, m.CircadianAlignment)
	})

	t.Run("Property: Metrics stay in range for varied valid profiles", func(t *testing.T) {
		bedtimes := []string{"19:00", "21:30", "22:00", "23:59", "00:15", "03:00"}
		wakes := []string{"04:00", "05:45", "06:00", "07:30", "11:00"}
		goals := []float64{0.5, 4, 8, 12}

		for _, bed := range bedtimes {
			for _, wake := range wakes {
				for _, goal := range goals {
					m := svc.CalculateMetrics(mustProfile(t, domain.ProfileInput{
						Bedtime:   strIn(bed),
						WakeTime:  strIn(wake),
						SleepGoal: f64In(goal),
					}))

					assert.GreaterOrEqual(t, m.SleepDebt, 0.0, "%s→%s goal %v", bed, wake, goal)
					assert.GreaterOrEqual(t, m.SleepEfficiency, 0.0, "%s→%s goal %v", bed, wake, goal)
					assert.LessOrEqual(t, m.SleepEfficiency, 100.0, "%s→%s goal %v", bed, wake, goal)
					assert.GreaterOrEqual(t, m.CircadianAlignment, 0, "%s→%s", bed, wake)
					assert.LessOrEqual(t, m.CircadianAlignment, 100, "%s→%s", bed, wake)
				}
			}
		}
	})
}

func TestProfileService_Recommendations(t *testing.T) {
	svc := services.NewProfileService()

	t.Run("Success: Base recommendations always present, offset from bedtime", func(t *testing.T) {
		recs := svc.Recommendations(mustProfile(t, domain.ProfileInput{}))

		require.Len(t, recs, 2)

		assert.Equal(t, "wind-down", recs[0].ID)
		assert.Equal(t, "Wind-down Routine", recs[0].Title)
		assert.Equal(t, "20:00", recs[0].Time)
		assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
		assert.Equal(t, domain.CategoryRoutine, recs[0].Category)

		assert.Equal(t, "screen-cutoff", recs[1].ID)
		assert.Equal(t, "21:00", recs[1].Time)
		assert.Equal(t, domain.CategoryEnvironment, recs[1].Category)
	})

	t.Run("Success: Base times follow a non-default bedtime with minutes", func(t *testing.T) {
		recs := svc.Recommendations(mustProfile(t, domain.ProfileInput{
			Bedtime: strIn("00:30"),
		}))

		require.Len(t, recs, 2)
		assert.Equal(t, "22:30", recs[0].Time)
		assert.Equal(t, "23:30", recs[1].Time)
	})

	t.Run("Success: Anxiety tag adds exactly one anxiety-relief entry", func(t *testing.T) {
		recs := svc.Recommendations(mustProfile(t, domain.ProfileInput{
			SleepIssues: []string{"anxiety"},
		}))

		require.Len(t, recs, 3)
		assert.Equal(t, "anxiety-relief", recs[2].ID)
		assert.Equal(t, "21:30", recs[2].Time)
		assert.Equal(t, domain.CategoryMentalHealth, recs[2].Category)
	})

	t.Run("Success: Temperature tag", func(t *testing.T) {
		recs := svc.Recommendations(mustProfile(t, domain.ProfileInput{
			SleepIssues: []string{"temperature"},
		}))

		require.Len(t, recs, 3)
		assert.Equal(t, "temperature-control", recs[2].ID)
		assert.Equal(t, "21:00", recs[2].Time)
	})

	t.Run("Edge Case: Unknown tags are silently ignored", func(t *testing.T) {
		recs := svc.Recommendations(mustProfile(t, domain.ProfileInput{
			SleepIssues: []string{"xyz", "snoring"},
		}))

		assert.Len(t, recs, 2)
	})

	t.Run("Edge Case: Duplicate tags duplicate their entry, input order kept", func(t *testing.T) {
		recs := svc.Recommendations(mustProfile(t, domain.ProfileInput{
			SleepIssues: []string{"temperature", "anxiety", "anxiety"},
		}))

		require.Len(t, recs, 5)
		assert.Equal(t, "temperature-control", recs[2].ID)
		assert.Equal(t, "anxiety-relief", recs[3].ID)
		assert.Equal(t, "anxiety-relief", recs[4].ID)
	})
}
