package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
)

const cohortAgeSpan = 5

// GenderAll disables gender filtering when passed as the cohort gender.
const GenderAll = "all"

type AnalysisService struct {
	repo domain.RecordRepository
}

func NewAnalysisService(repo domain.RecordRepository) *AnalysisService {
	return &AnalysisService{repo: repo}
}

// ListRecords returns the raw dataset as stored, never nil on success.
func (s *AnalysisService) ListRecords(ctx context.Context) ([]domain.SleepRecord, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.SleepRecord{}
	}
	return records, nil
}

// AnalyzeDataset computes the global descriptive statistics over every
// record. An empty dataset cannot produce means and is reported as
// domain.ErrNoMatchingRecords.
func (s *AnalysisService) AnalyzeDataset(ctx context.Context) (*domain.DatasetAnalysis, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoMatchingRecords
	}

	cols := newColumns(records)

	analysis := &domain.DatasetAnalysis{
		TotalRecords:       len(records),
		GenderDistribution: make(map[string]int),
	}

	if analysis.AverageSleepHours, err = roundedMean(cols.sleepHours, 2); err != nil {
		return nil, err
	}
	if analysis.AverageSleepQuality, err = roundedMean(cols.sleepQuality, 2); err != nil {
		return nil, err
	}
	if analysis.AverageProductivity, err = roundedMean(cols.productivity, 2); err != nil {
		return nil, err
	}
	if analysis.AverageMood, err = roundedMean(cols.mood, 2); err != nil {
		return nil, err
	}
	if analysis.AverageStress, err = roundedMean(cols.stress, 2); err != nil {
		return nil, err
	}

	if analysis.SleepHoursRange.Min, err = stats.Min(cols.sleepHours); err != nil {
		return nil, fmt.Errorf("sleep hours range: %w", err)
	}
	if analysis.SleepHoursRange.Max, err = stats.Max(cols.sleepHours); err != nil {
		return nil, fmt.Errorf("sleep hours range: %w", err)
	}

	for _, r := range records {
		analysis.GenderDistribution[r.Gender]++
	}

	minAge, maxAge := records[0].Age, records[0].Age
	for _, r := range records[1:] {
		if r.Age < minAge {
			minAge = r.Age
		}
		if r.Age > maxAge {
			maxAge = r.Age
		}
	}
	analysis.AgeDistribution.Min = minAge
	analysis.AgeDistribution.Max = maxAge
	if analysis.AgeDistribution.Average, err = roundedMean(cols.age, 1); err != nil {
		return nil, err
	}

	return analysis, nil
}

// CohortInsights filters the dataset down to records within 5 years of the
// target age (and matching gender, unless "all"), then computes the cohort
// averages and the matching recommendations.
func (s *AnalysisService) CohortInsights(ctx context.Context, filter domain.CohortFilter) (*domain.CohortInsights, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matchAnyGender := strings.EqualFold(filter.Gender, GenderAll)

	var cohort []domain.SleepRecord
	for _, r := range records {
		if r.Age < filter.Age-cohortAgeSpan || r.Age > filter.Age+cohortAgeSpan {
			continue
		}
		if !matchAnyGender && !strings.EqualFold(r.Gender, filter.Gender) {
			continue
		}
		cohort = append(cohort, r)
	}

	if len(cohort) == 0 {
		return nil, domain.ErrNoMatchingRecords
	}

	cols := newColumns(cohort)

	// Recommendations key off the raw means; the response fields carry the
	// rounded ones.
	rawSleep, err := stats.Mean(cols.sleepHours)
	if err != nil {
		return nil, err
	}
	rawQuality, err := stats.Mean(cols.sleepQuality)
	if err != nil {
		return nil, err
	}
	rawProductivity, err := stats.Mean(cols.productivity)
	if err != nil {
		return nil, err
	}

	insights := &domain.CohortInsights{
		SampleSize:      len(cohort),
		Recommendations: cohortRecommendations(rawSleep, rawQuality, rawProductivity, filter.Age),
	}

	if insights.AverageSleepHours, err = roundedMean(cols.sleepHours, 2); err != nil {
		return nil, err
	}
	if insights.AverageSleepQuality, err = roundedMean(cols.sleepQuality, 2); err != nil {
		return nil, err
	}
	if insights.AverageProductivity, err = roundedMean(cols.productivity, 2); err != nil {
		return nil, err
	}
	if insights.AverageMood, err = roundedMean(cols.mood, 2); err != nil {
		return nil, err
	}
	if insights.AverageStress, err = roundedMean(cols.stress, 2); err != nil {
		return nil, err
	}

	return insights, nil
}

// cohortRecommendations is the fixed rule table. Rules are evaluated in
// order; every matching rule contributes. The duration pair and the
// productivity pair are each mutually exclusive by their thresholds, the two
// quality entries always fire together.
func cohortRecommendations(avgSleep, avgQuality, avgProductivity float64, age int) []string {
	recommendations := []string{}

	if avgSleep < 7 {
		recommendations = append(recommendations, "Consider aiming for 7-9 hours of sleep per night for optimal health")
	} else if avgSleep > 9 {
		recommendations = append(recommendations, "While longer sleep can be beneficial, ensure it's quality sleep")
	}

	if avgQuality < 7 {
		recommendations = append(recommendations,
			"Focus on improving sleep environment: cool, dark, quiet bedroom",
			"Establish a consistent bedtime routine")
	}

	if avgProductivity > 85 {
		recommendations = append(recommendations, "Your sleep patterns are supporting high productivity - maintain consistency")
	} else if avgProductivity < 75 {
		recommendations = append(recommendations, "Poor sleep may be affecting productivity - prioritize sleep hygiene")
	}

	if age < 30 {
		recommendations = append(recommendations, "Young adults often need 7-9 hours of sleep for cognitive performance")
	} else if age > 50 {
		recommendations = append(recommendations, "Older adults may need consistent sleep timing for better health")
	}

	return recommendations
}

type columns struct {
	sleepHours   []float64
	sleepQuality []float64
	productivity []float64
	mood         []float64
	stress       []float64
	age          []float64
}

func newColumns(records []domain.SleepRecord) columns {
	c := columns{
		sleepHours:   make([]float64, 0, len(records)),
		sleepQuality: make([]float64, 0, len(records)),
		productivity: make([]float64, 0, len(records)),
		mood:         make([]float64, 0, len(records)),
		stress:       make([]float64, 0, len(records)),
		age:          make([]float64, 0, len(records)),
	}

	for _, r := range records {
		c.sleepHours = append(c.sleepHours, r.TotalSleepHours)
		c.sleepQuality = append(c.sleepQuality, r.SleepQuality)
		c.productivity = append(c.productivity, r.ProductivityScore)
		c.mood = append(c.mood, r.MoodScore)
		c.stress = append(c.stress, r.StressLevel)
		c.age = append(c.age, float64(r.Age))
	}

	return c
}

func roundedMean(values []float64, places int) (float64, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, fmt.Errorf("computing mean: %w", err)
	}

	rounded, err := stats.Round(mean, places)
	if err != nil {
		return 0, fmt.Errorf("rounding mean: %w", err)
	}

	return rounded, nil
}
