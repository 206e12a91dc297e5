package repository

import (
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
)

// Repository defines the interface for alert archive persistence
type Repository interface {
	SaveAlert(alert *domain.Alert) error
	GetRecentAlerts(limit int) ([]*domain.Alert, error)
}
