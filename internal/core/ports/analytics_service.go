package ports

import (
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// AnalyticsService produces the demo metric series rendered by the SaaS
// admin dashboard.
type AnalyticsService interface {
	Revenue(days int) []domain.RevenueMetrics
	UserBehavior(days int) []domain.UserBehaviorMetrics
	Performance(hours int) []domain.PerformanceMetrics
	Summary() domain.AnalyticsSummary
	TenantPerformance() []domain.TenantPerformance
	Geographic() domain.GeographicAnalytics
}
