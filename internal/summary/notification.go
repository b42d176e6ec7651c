package summary

import "github.com/sandeepkv93/vitald/internal/model"

type NotificationType string

const (
	NotificationHealthAlert      NotificationType = "health_alert"
	NotificationAIInsight        NotificationType = "ai_insight"
	NotificationActivityReminder NotificationType = "activity_reminder"
	NotificationSleepReminder    NotificationType = "sleep_reminder"
	NotificationBraceletStatus   NotificationType = "bracelet_status"
)

// Notification is the tuple handed to the dispatcher collaborator. Transport
// and serialization belong to the consumer, not here.
type Notification struct {
	Title    string
	Body     string
	Type     NotificationType
	Priority model.InsightPriority
}

// Notifications maps a summary's insights onto dispatcher tuples, keeping
// insight order. Only actionable insights become notifications; affirmations
// stay on the dashboard.
func Notifications(s model.HealthSummary) []Notification {
	out := make([]Notification, 0, len(s.Insights))
	for _, in := range s.Insights {
		if !in.Actionable {
			continue
		}
		out = append(out, Notification{
			Title:    in.Title,
			Body:     in.Description,
			Type:     notificationTypeFor(in.Type),
			Priority: in.Priority,
		})
	}
	return out
}

func notificationTypeFor(t model.InsightType) NotificationType {
	switch t {
	case model.InsightSleep:
		return NotificationSleepReminder
	case model.InsightActivity:
		return NotificationActivityReminder
	case model.InsightRecovery, model.InsightStress:
		return NotificationAIInsight
	default:
		return NotificationHealthAlert
	}
}
