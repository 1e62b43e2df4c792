package services

import (
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/metrics"
	models "pneutrack/backend/internal/models/gorm"
)

// Notifier writes notification rows. Emit takes the caller's transaction
// handle so the notification commits or rolls back together with the
// mutation that triggered it.
type Notifier struct {
	metrics *metrics.MetricsRegistry
}

func NewNotifier(metricsReg *metrics.MetricsRegistry) *Notifier {
	return &Notifier{metrics: metricsReg}
}

func (n *Notifier) Emit(tx *gorm.DB, role constants.Role, message, link string) error {
	note := models.Notification{
		TargetRole: role,
		Message:    message,
		Link:       link,
	}
	if err := tx.Create(&note).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	n.metrics.NotificationsEmitted.WithLabelValues(role.String()).Inc()
	return nil
}
