package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTimeLayout = time.RFC3339Nano
	sqliteDateLayout = "2006-01-02"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateVitalSample(ctx context.Context, in VitalSample) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vital_samples (id, taken_at, heart_rate, hrv, blood_oxygen, skin_temperature, stress_level, muscle_oxygen, muscle_fatigue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, mustTime(in.TakenAt), in.HeartRate, in.HRV, in.BloodOxygen, in.SkinTemperature,
		in.StressLevel, nullFloat(in.MuscleOxygen), nullString(in.MuscleFatigue),
	)
	return err
}

func (r *SQLiteRepository) GetVitalSample(ctx context.Context, id string) (VitalSample, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, taken_at, heart_rate, hrv, blood_oxygen, skin_temperature, stress_level, muscle_oxygen, muscle_fatigue
		FROM vital_samples WHERE id = ?`, id)
	sample, err := scanVitalSample(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VitalSample{}, ErrNotFound
		}
		return VitalSample{}, err
	}
	return sample, nil
}

func (r *SQLiteRepository) ListVitalSamples(ctx context.Context, filter VitalSampleListFilter) ([]VitalSample, error) {
	query := `SELECT id, taken_at, heart_rate, hrv, blood_oxygen, skin_temperature, stress_level, muscle_oxygen, muscle_fatigue FROM vital_samples`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.Since != nil {
		clauses = append(clauses, "taken_at >= ?")
		args = append(args, mustTime(*filter.Since))
	}
	if filter.Until != nil {
		clauses = append(clauses, "taken_at < ?")
		args = append(args, mustTime(*filter.Until))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY taken_at DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]VitalSample, 0)
	for rows.Next() {
		sample, scanErr := scanVitalSample(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, sample)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeleteVitalSamplesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vital_samples WHERE taken_at < ?`, mustTime(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) UpsertSleepRecord(ctx context.Context, in SleepRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sleep_records (id, date, total_minutes, deep_minutes, light_minutes, rem_minutes, awake_minutes, sleep_score, bed_time, wake_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_minutes = excluded.total_minutes,
			deep_minutes = excluded.deep_minutes,
			light_minutes = excluded.light_minutes,
			rem_minutes = excluded.rem_minutes,
			awake_minutes = excluded.awake_minutes,
			sleep_score = excluded.sleep_score,
			bed_time = excluded.bed_time,
			wake_time = excluded.wake_time`,
		in.ID, mustDate(in.Date), in.TotalMinutes, in.DeepMinutes, in.LightMinutes, in.RemMinutes,
		in.AwakeMinutes, in.SleepScore, mustTime(in.BedTime), mustTime(in.WakeTime),
	)
	return err
}

func (r *SQLiteRepository) GetSleepRecordByDate(ctx context.Context, date time.Time) (SleepRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, total_minutes, deep_minutes, light_minutes, rem_minutes, awake_minutes, sleep_score, bed_time, wake_time
		FROM sleep_records WHERE date = ?`, mustDate(date))
	rec, err := scanSleepRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SleepRecord{}, ErrNotFound
		}
		return SleepRecord{}, err
	}
	return rec, nil
}

func (r *SQLiteRepository) ListSleepRecords(ctx context.Context, filter DateRangeFilter) ([]SleepRecord, error) {
	query := `SELECT id, date, total_minutes, deep_minutes, light_minutes, rem_minutes, awake_minutes, sleep_score, bed_time, wake_time FROM sleep_records`
	args := make([]any, 0, 4)
	query += dateRangeClauses(&args, filter)
	query += ` ORDER BY date DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SleepRecord, 0)
	for rows.Next() {
		rec, scanErr := scanSleepRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpsertActivityRecord(ctx context.Context, in ActivityRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_records (id, date, steps, distance_km, calories_burned, active_minutes, standing_hours, floors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			steps = excluded.steps,
			distance_km = excluded.distance_km,
			calories_burned = excluded.calories_burned,
			active_minutes = excluded.active_minutes,
			standing_hours = excluded.standing_hours,
			floors = excluded.floors`,
		in.ID, mustDate(in.Date), in.Steps, in.DistanceKM, in.CaloriesBurned,
		in.ActiveMinutes, in.StandingHours, in.Floors,
	)
	return err
}

func (r *SQLiteRepository) GetActivityRecordByDate(ctx context.Context, date time.Time) (ActivityRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, steps, distance_km, calories_burned, active_minutes, standing_hours, floors
		FROM activity_records WHERE date = ?`, mustDate(date))
	rec, err := scanActivityRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ActivityRecord{}, ErrNotFound
		}
		return ActivityRecord{}, err
	}
	return rec, nil
}

func (r *SQLiteRepository) ListActivityRecords(ctx context.Context, filter DateRangeFilter) ([]ActivityRecord, error) {
	query := `SELECT id, date, steps, distance_km, calories_burned, active_minutes, standing_hours, floors FROM activity_records`
	args := make([]any, 0, 4)
	query += dateRangeClauses(&args, filter)
	query += ` ORDER BY date DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActivityRecord, 0)
	for rows.Next() {
		rec, scanErr := scanActivityRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpsertRecoverySnapshot(ctx context.Context, in RecoverySnapshot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recovery_snapshots (id, date, recovery_score, readiness_score, muscle_recovery, energy_level, recommendation, hrv_normalized, sleep_quality, daily_strain)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			recovery_score = excluded.recovery_score,
			readiness_score = excluded.readiness_score,
			muscle_recovery = excluded.muscle_recovery,
			energy_level = excluded.energy_level,
			recommendation = excluded.recommendation,
			hrv_normalized = excluded.hrv_normalized,
			sleep_quality = excluded.sleep_quality,
			daily_strain = excluded.daily_strain`,
		in.ID, mustDate(in.Date), in.RecoveryScore, in.ReadinessScore, in.MuscleRecovery,
		in.EnergyLevel, in.Recommendation, in.HRVNormalized, in.SleepQuality, in.DailyStrain,
	)
	return err
}

func (r *SQLiteRepository) GetRecoverySnapshotByDate(ctx context.Context, date time.Time) (RecoverySnapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, recovery_score, readiness_score, muscle_recovery, energy_level, recommendation, hrv_normalized, sleep_quality, daily_strain
		FROM recovery_snapshots WHERE date = ?`, mustDate(date))
	snap, err := scanRecoverySnapshot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RecoverySnapshot{}, ErrNotFound
		}
		return RecoverySnapshot{}, err
	}
	return snap, nil
}

func (r *SQLiteRepository) ListRecoverySnapshots(ctx context.Context, filter DateRangeFilter) ([]RecoverySnapshot, error) {
	query := `SELECT id, date, recovery_score, readiness_score, muscle_recovery, energy_level, recommendation, hrv_normalized, sleep_quality, daily_strain FROM recovery_snapshots`
	args := make([]any, 0, 4)
	query += dateRangeClauses(&args, filter)
	query += ` ORDER BY date DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecoverySnapshot, 0)
	for rows.Next() {
		snap, scanErr := scanRecoverySnapshot(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateInsight(ctx context.Context, in Insight) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO insights (insight_id, type, title, description, priority, actionable, recommendation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.InsightID, in.Type, in.Title, in.Description, in.Priority, boolInt(in.Actionable),
		in.Recommendation, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) ListInsights(ctx context.Context, filter InsightListFilter) ([]Insight, error) {
	query := `SELECT insight_id, type, title, description, priority, actionable, recommendation, created_at FROM insights`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, mustTime(*filter.Since))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Insight, 0)
	for rows.Next() {
		item, scanErr := scanInsight(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeleteInsightsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM insights WHERE created_at < ?`, mustTime(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func mustDate(v time.Time) string {
	return v.UTC().Format(sqliteDateLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func parseRequiredDate(v string) (time.Time, error) {
	return time.Parse(sqliteDateLayout, v)
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func dateRangeClauses(args *[]any, filter DateRangeFilter) string {
	clauses := make([]string, 0, 2)
	if filter.From != nil {
		clauses = append(clauses, "date >= ?")
		*args = append(*args, mustDate(*filter.From))
	}
	if filter.To != nil {
		clauses = append(clauses, "date <= ?")
		*args = append(*args, mustDate(*filter.To))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVitalSample(s scanner) (VitalSample, error) {
	var out VitalSample
	var taken string
	var oxygen sql.NullFloat64
	var fatigue sql.NullString
	if err := s.Scan(&out.ID, &taken, &out.HeartRate, &out.HRV, &out.BloodOxygen, &out.SkinTemperature, &out.StressLevel, &oxygen, &fatigue); err != nil {
		return VitalSample{}, err
	}
	takenAt, err := parseRequiredTime(taken)
	if err != nil {
		return VitalSample{}, err
	}
	out.TakenAt = takenAt
	if oxygen.Valid {
		v := oxygen.Float64
		out.MuscleOxygen = &v
	}
	if fatigue.Valid {
		out.MuscleFatigue = fatigue.String
	}
	return out, nil
}

func scanSleepRecord(s scanner) (SleepRecord, error) {
	var out SleepRecord
	var date string
	var bed string
	var wake string
	if err := s.Scan(&out.ID, &date, &out.TotalMinutes, &out.DeepMinutes, &out.LightMinutes, &out.RemMinutes, &out.AwakeMinutes, &out.SleepScore, &bed, &wake); err != nil {
		return SleepRecord{}, err
	}
	day, err := parseRequiredDate(date)
	if err != nil {
		return SleepRecord{}, err
	}
	bedTime, err := parseRequiredTime(bed)
	if err != nil {
		return SleepRecord{}, err
	}
	wakeTime, err := parseRequiredTime(wake)
	if err != nil {
		return SleepRecord{}, err
	}
	out.Date = day
	out.BedTime = bedTime
	out.WakeTime = wakeTime
	return out, nil
}

func scanActivityRecord(s scanner) (ActivityRecord, error) {
	var out ActivityRecord
	var date string
	if err := s.Scan(&out.ID, &date, &out.Steps, &out.DistanceKM, &out.CaloriesBurned, &out.ActiveMinutes, &out.StandingHours, &out.Floors); err != nil {
		return ActivityRecord{}, err
	}
	day, err := parseRequiredDate(date)
	if err != nil {
		return ActivityRecord{}, err
	}
	out.Date = day
	return out, nil
}

func scanRecoverySnapshot(s scanner) (RecoverySnapshot, error) {
	var out RecoverySnapshot
	var date string
	if err := s.Scan(&out.ID, &date, &out.RecoveryScore, &out.ReadinessScore, &out.MuscleRecovery, &out.EnergyLevel, &out.Recommendation, &out.HRVNormalized, &out.SleepQuality, &out.DailyStrain); err != nil {
		return RecoverySnapshot{}, err
	}
	day, err := parseRequiredDate(date)
	if err != nil {
		return RecoverySnapshot{}, err
	}
	out.Date = day
	return out, nil
}

func scanInsight(s scanner) (Insight, error) {
	var out Insight
	var actionable int
	var created string
	if err := s.Scan(&out.InsightID, &out.Type, &out.Title, &out.Description, &out.Priority, &actionable, &out.Recommendation, &created); err != nil {
		return Insight{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Insight{}, err
	}
	out.Actionable = actionable == 1
	out.CreatedAt = createdAt
	return out, nil
}
