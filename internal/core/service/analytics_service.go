package service

import (
	"math"
	"math/rand"
	"time"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

const (
	defaultRangeDays  = 30
	maxRangeDays      = 90
	defaultRangeHours = 24
	maxRangeHours     = 168
)

// AnalyticsService generates the demo metric series behind the SaaS admin
// dashboard. Values are synthesized per call; only the shapes are contractual.
type AnalyticsService struct {
	now func() time.Time
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{now: time.Now}
}

// Revenue returns one entry per day, most recent last.
func (s *AnalyticsService) Revenue(days int) []domain.RevenueMetrics {
	days = clampRange(days, defaultRangeDays, maxRangeDays)
	today := s.now().UTC()

	out := make([]domain.RevenueMetrics, 0, days)
	for i := days - 1; i >= 0; i-- {
		tenants := 40 + rand.Intn(20)
		total := 45000 + rand.Float64()*30000
		subscription := total * (0.55 + rand.Float64()*0.15)
		out = append(out, domain.RevenueMetrics{
			Date:                today.AddDate(0, 0, -i).Format("2006-01-02"),
			TotalRevenue:        round2(total),
			TenantCount:         tenants,
			AvgRevenuePerTenant: round2(total / float64(tenants)),
			SubscriptionRevenue: round2(subscription),
			TransactionRevenue:  round2(total - subscription),
			GrowthRate:          round2(-5 + rand.Float64()*20),
		})
	}
	return out
}

func (s *AnalyticsService) UserBehavior(days int) []domain.UserBehaviorMetrics {
	days = clampRange(days, defaultRangeDays, maxRangeDays)
	today := s.now().UTC()

	out := make([]domain.UserBehaviorMetrics, 0, days)
	for i := days - 1; i >= 0; i-- {
		daily := 2500 + rand.Intn(1500)
		out = append(out, domain.UserBehaviorMetrics{
			Date:               today.AddDate(0, 0, -i).Format("2006-01-02"),
			DailyActiveUsers:   daily,
			MonthlyActiveUsers: daily*8 + rand.Intn(5000),
			SessionDurationAvg: round2(8 + rand.Float64()*12),
			PageViews:          daily*6 + rand.Intn(10000),
			FeatureUsage: map[string]int{
				"orders":    800 + rand.Intn(600),
				"analytics": 200 + rand.Intn(200),
				"inventory": 400 + rand.Intn(300),
				"support":   100 + rand.Intn(150),
			},
			LoginFrequency: map[string]int{
				"daily":   1200 + rand.Intn(500),
				"weekly":  700 + rand.Intn(300),
				"monthly": 300 + rand.Intn(200),
			},
			UserRetentionRate: round2(70 + rand.Float64()*25),
		})
	}
	return out
}

// Performance returns one sample per hour, most recent last.
func (s *AnalyticsService) Performance(hours int) []domain.PerformanceMetrics {
	hours = clampRange(hours, defaultRangeHours, maxRangeHours)
	now := s.now().UTC().Truncate(time.Hour)

	out := make([]domain.PerformanceMetrics, 0, hours)
	for i := hours - 1; i >= 0; i-- {
		out = append(out, domain.PerformanceMetrics{
			Timestamp:           now.Add(-time.Duration(i) * time.Hour),
			APIResponseTime:     round2(80 + rand.Float64()*220),
			ErrorRate:           round2(rand.Float64() * 2.5),
			UptimePercentage:    round2(99 + rand.Float64()),
			CPUUsage:            round2(20 + rand.Float64()*55),
			MemoryUsage:         round2(35 + rand.Float64()*40),
			DatabaseConnections: 20 + rand.Intn(60),
			ActiveSessions:      500 + rand.Intn(2000),
		})
	}
	return out
}

func (s *AnalyticsService) Summary() domain.AnalyticsSummary {
	return domain.AnalyticsSummary{
		TotalRevenue:       round2(1500000 + rand.Float64()*500000),
		RevenueGrowth:      round2(5 + rand.Float64()*15),
		TotalUsers:         45000 + rand.Intn(15000),
		ActiveUsers:        12000 + rand.Intn(8000),
		ConversionRate:     round2(2 + rand.Float64()*4),
		ChurnRate:          round2(1 + rand.Float64()*3),
		AvgSessionDuration: round2(10 + rand.Float64()*10),
		SystemUptime:       round2(99.5 + rand.Float64()*0.49),
	}
}

func (s *AnalyticsService) TenantPerformance() []domain.TenantPerformance {
	names := []string{"QuickMart", "Foodie Express", "TechBazaar", "FreshFarm", "MediPlus", "StyleHub"}

	out := make([]domain.TenantPerformance, 0, len(names))
	for _, name := range names {
		orders := 1200 + rand.Intn(4000)
		revenue := float64(orders) * (18 + rand.Float64()*30)
		out = append(out, domain.TenantPerformance{
			TenantName:        name,
			MonthlyRevenue:    round2(revenue),
			MonthlyOrders:     orders,
			AvgOrderValue:     round2(revenue / float64(orders)),
			CustomerCount:     900 + rand.Intn(3000),
			GrowthRate:        round2(-3 + rand.Float64()*18),
			SatisfactionScore: round2(3.5 + rand.Float64()*1.5),
		})
	}
	return out
}

func (s *AnalyticsService) Geographic() domain.GeographicAnalytics {
	regions := []string{"North", "South", "East", "West", "Central"}
	shares := make([]float64, len(regions))
	var sum float64
	for i := range shares {
		shares[i] = 0.5 + rand.Float64()
		sum += shares[i]
	}

	totalRevenue := 800000 + rand.Float64()*400000
	byRegion := make([]domain.RegionRevenue, 0, len(regions))
	for i, region := range regions {
		share := shares[i] / sum
		byRegion = append(byRegion, domain.RegionRevenue{
			Region:  region,
			Revenue: round2(totalRevenue * share),
			Share:   round2(share * 100),
		})
	}

	cities := []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai"}
	topCities := make([]domain.CityStats, 0, len(cities))
	for _, city := range cities {
		topCities = append(topCities, domain.CityStats{
			City:   city,
			Orders: 5000 + rand.Intn(20000),
			Growth: round2(-2 + rand.Float64()*15),
		})
	}

	return domain.GeographicAnalytics{RevenueByRegion: byRegion, TopCities: topCities}
}

func clampRange(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
