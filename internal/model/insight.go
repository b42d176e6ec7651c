package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInsightType     = errors.New("model: invalid insight type")
	ErrInvalidInsightPriority = errors.New("model: invalid insight priority")
)

type InsightType string

const (
	InsightHealth    InsightType = "health"
	InsightSleep     InsightType = "sleep"
	InsightActivity  InsightType = "activity"
	InsightRecovery  InsightType = "recovery"
	InsightNutrition InsightType = "nutrition"
	InsightStress    InsightType = "stress"
)

func (t InsightType) IsValid() bool {
	switch t {
	case InsightHealth, InsightSleep, InsightActivity, InsightRecovery, InsightNutrition, InsightStress:
		return true
	default:
		return false
	}
}

type InsightPriority string

const (
	InsightPriorityLow    InsightPriority = "low"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityHigh   InsightPriority = "high"
)

func (p InsightPriority) IsValid() bool {
	switch p {
	case InsightPriorityLow, InsightPriorityMedium, InsightPriorityHigh:
		return true
	default:
		return false
	}
}

// Insight is one rule-derived observation. Insights are created fresh each
// composition tick and never mutated; the ID is stable across ticks for the
// same rule so consumers can de-duplicate.
type Insight struct {
	ID             string
	Type           InsightType
	Title          string
	Description    string
	Priority       InsightPriority
	Actionable     bool
	Recommendation string
	Timestamp      time.Time
}

func (i Insight) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("model: insight id is required")
	}
	if strings.TrimSpace(i.Title) == "" {
		return errors.New("model: insight title is required")
	}
	if !i.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidInsightType, i.Type)
	}
	if !i.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidInsightPriority, i.Priority)
	}
	if i.Timestamp.IsZero() {
		return errors.New("model: insight timestamp is required")
	}
	return nil
}
