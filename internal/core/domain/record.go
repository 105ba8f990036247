package domain

import (
	"context"
	"errors"
)

var (
	ErrDataSourceMissing = errors.New("sleep data file not found")
	ErrNoMatchingRecords = errors.New("no data found for the specified criteria")
)

// SleepRecord is one row of the survey dataset. JSON tags mirror the dataset
// column headers so API payloads keep the original column names.
type SleepRecord struct {
	TotalSleepHours   float64 `json:"Total Sleep Hours" db:"total_sleep_hours"`
	SleepQuality      float64 `json:"Sleep Quality" db:"sleep_quality"`
	ProductivityScore float64 `json:"Productivity Score" db:"productivity_score"`
	MoodScore         float64 `json:"Mood Score" db:"mood_score"`
	StressLevel       float64 `json:"Stress Level" db:"stress_level"`
	Gender            string  `json:"Gender" db:"gender"`
	Age               int     `json:"Age" db:"age"`
}

type RecordRepository interface {
	// ListAll returns every record in the data source. The source is read
	// fresh on every call; implementations must not cache between calls.
	ListAll(ctx context.Context) ([]SleepRecord, error)
}
