package storage

import "time"

type VitalSample struct {
	ID              string
	TakenAt         time.Time
	HeartRate       int
	HRV             float64
	BloodOxygen     float64
	SkinTemperature float64
	StressLevel     int
	MuscleOxygen    *float64
	MuscleFatigue   string
}

type SleepRecord struct {
	ID           string
	Date         time.Time
	TotalMinutes int
	DeepMinutes  int
	LightMinutes int
	RemMinutes   int
	AwakeMinutes int
	SleepScore   int
	BedTime      time.Time
	WakeTime     time.Time
}

type ActivityRecord struct {
	ID             string
	Date           time.Time
	Steps          int
	DistanceKM     float64
	CaloriesBurned int
	ActiveMinutes  int
	StandingHours  int
	Floors         int
}

type RecoverySnapshot struct {
	ID             string
	Date           time.Time
	RecoveryScore  int
	ReadinessScore int
	MuscleRecovery int
	EnergyLevel    int
	Recommendation string
	HRVNormalized  float64
	SleepQuality   float64
	DailyStrain    float64
}

type Insight struct {
	InsightID      string
	Type           string
	Title          string
	Description    string
	Priority       string
	Actionable     bool
	Recommendation string
	CreatedAt      time.Time
}

type VitalSampleListFilter struct {
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

type DateRangeFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type InsightListFilter struct {
	Type   string
	Since  *time.Time
	Limit  int
	Offset int
}
