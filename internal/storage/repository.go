package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateVitalSample(ctx context.Context, in VitalSample) error
	GetVitalSample(ctx context.Context, id string) (VitalSample, error)
	ListVitalSamples(ctx context.Context, filter VitalSampleListFilter) ([]VitalSample, error)
	DeleteVitalSamplesBefore(ctx context.Context, cutoff time.Time) (int64, error)

	UpsertSleepRecord(ctx context.Context, in SleepRecord) error
	GetSleepRecordByDate(ctx context.Context, date time.Time) (SleepRecord, error)
	ListSleepRecords(ctx context.Context, filter DateRangeFilter) ([]SleepRecord, error)

	UpsertActivityRecord(ctx context.Context, in ActivityRecord) error
	GetActivityRecordByDate(ctx context.Context, date time.Time) (ActivityRecord, error)
	ListActivityRecords(ctx context.Context, filter DateRangeFilter) ([]ActivityRecord, error)

	UpsertRecoverySnapshot(ctx context.Context, in RecoverySnapshot) error
	GetRecoverySnapshotByDate(ctx context.Context, date time.Time) (RecoverySnapshot, error)
	ListRecoverySnapshots(ctx context.Context, filter DateRangeFilter) ([]RecoverySnapshot, error)

	CreateInsight(ctx context.Context, in Insight) error
	ListInsights(ctx context.Context, filter InsightListFilter) ([]Insight, error)
	DeleteInsightsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
