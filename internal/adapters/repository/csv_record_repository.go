package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
)

// Required dataset columns, matched against the header exactly (case and
// spacing included). Extra columns are ignored.
var requiredColumns = []string{
	"Total Sleep Hours",
	"Sleep Quality",
	"Productivity Score",
	"Mood Score",
	"Stress Level",
	"Gender",
	"Age",
}

// CSVRecordRepository reads the survey dataset from a CSV file. The path is
// fixed at construction; the file is opened and parsed fresh on every call,
// so dataset swaps on disk are picked up without a restart.
type CSVRecordRepository struct {
	path string
}

func NewCSVRecordRepository(path string) *CSVRecordRepository {
	return &CSVRecordRepository{path: path}
}

func (r *CSVRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrDataSourceMissing
		}
		return nil, fmt.Errorf("opening sleep data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading sleep data header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("sleep data file is missing column %q", name)
		}
	}

	var records []domain.SleepRecord
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sleep data row: %w", err)
		}
		line++

		record, err := parseRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("sleep data line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, colIdx map[string]int) (domain.SleepRecord, error) {
	var rec domain.SleepRecord
	var err error

	if rec.TotalSleepHours, err = floatCell(row, colIdx, "Total Sleep Hours"); err != nil {
		return rec, err
	}
	if rec.SleepQuality, err = floatCell(row, colIdx, "Sleep Quality"); err != nil {
		return rec, err
	}
	if rec.ProductivityScore, err = floatCell(row, colIdx, "Productivity Score"); err != nil {
		return rec, err
	}
	if rec.MoodScore, err = floatCell(row, colIdx, "Mood Score"); err != nil {
		return rec, err
	}
	if rec.StressLevel, err = floatCell(row, colIdx, "Stress Level"); err != nil {
		return rec, err
	}

	rec.Gender = strings.TrimSpace(row[colIdx["Gender"]])

	// Ages sometimes arrive as "25.0" from spreadsheet exports.
	age, err := floatCell(row, colIdx, "Age")
	if err != nil {
		return rec, err
	}
	rec.Age = int(age)

	return rec, nil
}

func floatCell(row []string, colIdx map[string]int, column string) (float64, error) {
	idx := colIdx[column]
	if idx >= len(row) {
		return 0, fmt.Errorf("missing value for column %q", column)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", column, row[idx])
	}

	return value, nil
}
