package domain

import "time"

// Demo analytics payloads served to the SaaS admin dashboard. The shapes
// mirror what the portal client renders; the values are generated, not
// computed from real traffic.

type RevenueMetrics struct {
	Date                string  `json:"date"`
	TotalRevenue        float64 `json:"total_revenue"`
	TenantCount         int     `json:"tenant_count"`
	AvgRevenuePerTenant float64 `json:"avg_revenue_per_tenant"`
	SubscriptionRevenue float64 `json:"subscription_revenue"`
	TransactionRevenue  float64 `json:"transaction_revenue"`
	GrowthRate          float64 `json:"growth_rate"`
}

type UserBehaviorMetrics struct {
	Date               string         `json:"date"`
	DailyActiveUsers   int            `json:"daily_active_users"`
	MonthlyActiveUsers int            `json:"monthly_active_users"`
	SessionDurationAvg float64        `json:"session_duration_avg"`
	PageViews          int            `json:"page_views"`
	FeatureUsage       map[string]int `json:"feature_usage"`
	LoginFrequency     map[string]int `json:"login_frequency"`
	UserRetentionRate  float64        `json:"user_retention_rate"`
}

type PerformanceMetrics struct {
	Timestamp           time.Time `json:"timestamp"`
	APIResponseTime     float64   `json:"api_response_time"`
	ErrorRate           float64   `json:"error_rate"`
	UptimePercentage    float64   `json:"uptime_percentage"`
	CPUUsage            float64   `json:"cpu_usage"`
	MemoryUsage         float64   `json:"memory_usage"`
	DatabaseConnections int       `json:"database_connections"`
	ActiveSessions      int       `json:"active_sessions"`
}

type AnalyticsSummary struct {
	TotalRevenue       float64 `json:"total_revenue"`
	RevenueGrowth      float64 `json:"revenue_growth"`
	TotalUsers         int     `json:"total_users"`
	ActiveUsers        int     `json:"active_users"`
	ConversionRate     float64 `json:"conversion_rate"`
	ChurnRate          float64 `json:"churn_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	SystemUptime       float64 `json:"system_uptime"`
}

type TenantPerformance struct {
	TenantName        string  `json:"tenant_name"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	MonthlyOrders     int     `json:"monthly_orders"`
	AvgOrderValue     float64 `json:"avg_order_value"`
	CustomerCount     int     `json:"customer_count"`
	GrowthRate        float64 `json:"growth_rate"`
	SatisfactionScore float64 `json:"satisfaction_score"`
}

type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
	Share   float64 `json:"share"`
}

type CityStats struct {
	City   string  `json:"city"`
	Orders int     `json:"orders"`
	Growth float64 `json:"growth"`
}

type GeographicAnalytics struct {
	RevenueByRegion []RegionRevenue `json:"revenue_by_region"`
	TopCities       []CityStats     `json:"top_cities"`
}
