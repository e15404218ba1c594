package services

import (
	"context"
	"time"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// Overview returns portal-wide totals next to the caller's own numbers.
func (s *AnalyticsService) Overview(ctx context.Context, userID string) (*dtos.AnalyticsOverview, error) {
	db := s.DB.WithContext(ctx)
	out := &dtos.AnalyticsOverview{}

	counts := []struct {
		model any
		where bool
		dst   *int64
	}{
		{&models.Job{}, false, &out.TotalJobs},
		{&models.Job{}, true, &out.TotalJobsByUser},
		{&models.Company{}, false, &out.TotalCompanies},
		{&models.Company{}, true, &out.TotalCompaniesUser},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where {
			q = q.Where("user_id = ?", userID)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	var jobTimes, companyTimes []time.Time
	if err := db.Model(&models.Job{}).Where("user_id = ?", userID).Pluck("created_at", &jobTimes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Company{}).Where("user_id = ?", userID).Pluck("created_at", &companyTimes).Error; err != nil {
		return nil, err
	}
	out.JobsByMonth = CountByMonth(jobTimes)
	out.CompaniesByMonth = CountByMonth(companyTimes)
	return out, nil
}

// CountByMonth buckets timestamps into the twelve months of the year, in
// calendar order, across all years.
func CountByMonth(times []time.Time) []dtos.MonthlyCount {
	var buckets [12]int64
	for _, t := range times {
		buckets[t.Month()-1]++
	}
	out := make([]dtos.MonthlyCount, 12)
	for i := range buckets {
		out[i] = dtos.MonthlyCount{Month: time.Month(i + 1).String()[:3], Count: buckets[i]}
	}
	return out
}
