package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyProfile     = errors.New("no profile data provided")
	ErrInvalidSleepGoal = errors.New("sleep goal must be greater than zero")
)

const (
	DefaultBedtime   = "22:00"
	DefaultWakeTime  = "06:00"
	DefaultSleepGoal = 8
	DefaultLifestyle = "moderate"
)

// ProfileInput carries the raw, partially-filled profile as submitted by the
// client. Nil fields mean "not provided" and receive defaults.
type ProfileInput struct {
	Bedtime     *string
	WakeTime    *string
	SleepGoal   *float64
	Lifestyle   *string
	SleepIssues []string
}

// SleepProfile is a fully-populated, validated profile. Construct it through
// NewSleepProfile; the zero value has no parsed clocks and is not usable.
type SleepProfile struct {
	Bedtime     string   `json:"bedtime"`
	WakeTime    string   `json:"wakeTime"`
	SleepGoal   float64  `json:"sleepGoal"`
	Lifestyle   string   `json:"lifestyle"`
	SleepIssues []string `json:"sleepIssues"`

	bedtime  Clock
	wakeTime Clock
}

// NewSleepProfile applies defaults for missing fields, then validates the
// whole profile in one place. Nothing downstream re-checks inputs.
func NewSleepProfile(in ProfileInput) (*SleepProfile, error) {
	p := &SleepProfile{
		Bedtime:     DefaultBedtime,
		WakeTime:    DefaultWakeTime,
		SleepGoal:   DefaultSleepGoal,
		Lifestyle:   DefaultLifestyle,
		SleepIssues: []string{},
	}

	if in.Bedtime != nil {
		p.Bedtime = *in.Bedtime
	}
	if in.WakeTime != nil {
		p.WakeTime = *in.WakeTime
	}
	if in.SleepGoal != nil {
		p.SleepGoal = *in.SleepGoal
	}
	if in.Lifestyle != nil {
		p.Lifestyle = *in.Lifestyle
	}
	if in.SleepIssues != nil {
		p.SleepIssues = in.SleepIssues
	}

	var err error
	if p.bedtime, err = ParseClock(p.Bedtime); err != nil {
		return nil, fmt.Errorf("bedtime: %w", err)
	}
	if p.wakeTime, err = ParseClock(p.WakeTime); err != nil {
		return nil, fmt.Errorf("wakeTime: %w", err)
	}

	if p.SleepGoal <= 0 {
		return nil, ErrInvalidSleepGoal
	}

	return p, nil
}

func (p *SleepProfile) BedtimeClock() Clock {
	return p.bedtime
}

func (p *SleepProfile) WakeClock() Clock {
	return p.wakeTime
}
