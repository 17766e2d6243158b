package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"techcareer/internal/domain/forecast"
	"techcareer/internal/domain/job"
	"techcareer/internal/pkg/stats"
	"techcareer/internal/repository"
)

const (
	defaultTrendLimit = 20
	maxTrendLimit     = 100

	// Growth-rate queries per trending request run on this many goroutines.
	growthQueryWorkers = 4

	trendCacheTTL = 10 * time.Minute
)

type SkillTrend struct {
	Skill      string
	Count      int
	GrowthRate float64
	Trend      string
}

type TrendingSkillsResult struct {
	TimeRange string
	Role      string
	Location  string
	Trends    []SkillTrend
}

type DemandForecast struct {
	ForecastMonths int
	Forecasts      []forecast.Projection
	GeneratedAt    time.Time
}

type MonthlySalaryTrend struct {
	Month        string
	AvgSalary    float64
	MedianSalary float64
	SampleSize   int
}

type SalaryTrendsResult struct {
	Role             string
	Location         string
	TimeRange        string
	Trends           []MonthlySalaryTrend
	OverallChangePct float64
}

type TrendsUsecase interface {
	GetTrendingSkills(ctx context.Context, timeRange, role, location string, limit int) (TrendingSkillsResult, error)
	ForecastDemand(ctx context.Context, months int, skills []string) (DemandForecast, error)
	GetSalaryTrends(ctx context.Context, role, timeRange, location string) (SalaryTrendsResult, error)
}

type Trends struct {
	records repository.JobRecordRepository
	cache   MarketCache
	now     func() time.Time
}

func NewTrendsUsecase(records repository.JobRecordRepository, cache MarketCache) *Trends {
	return &Trends{records: records, cache: cache, now: time.Now}
}

// GetTrendingSkills ranks skills by occurrence over the window and attaches
// a first-half/second-half growth rate per skill. Results are market-wide
// and cacheable.
func (u *Trends) GetTrendingSkills(ctx context.Context, timeRange, role, location string, limit int) (TrendingSkillsResult, error) {
	if limit <= 0 {
		limit = defaultTrendLimit
	}
	if limit > maxTrendLimit {
		limit = maxTrendLimit
	}

	cacheKey := fmt.Sprintf("trends:skills:%s:%s:%s:%d", timeRange, strings.ToLower(role), strings.ToLower(location), limit)
	if u.cache != nil {
		var cached TrendingSkillsResult
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	days := forecast.WindowDays(timeRange)
	now := u.now().UTC()
	since := now.AddDate(0, 0, -days)

	records, err := u.records.ListPostedSince(ctx, since, role, location)
	if err != nil {
		return TrendingSkillsResult{}, fmt.Errorf("%w: list records: %v", ErrInternal, err)
	}

	top := topSkillCounts(records, limit)

	trends := make([]SkillTrend, len(top))
	mid := now.AddDate(0, 0, -days/2)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, growthQueryWorkers)

	for i, sc := range top {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, skill string, count int) {
			defer wg.Done()
			defer func() { <-sem }()

			growth, err := u.skillGrowth(ctx, skill, since, mid, now, role, location)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			trends[i] = SkillTrend{
				Skill:      skill,
				Count:      count,
				GrowthRate: growth,
				Trend:      forecast.TrendLabel(growth),
			}
		}(i, sc.skill, sc.count)
	}
	wg.Wait()

	if firstErr != nil {
		return TrendingSkillsResult{}, fmt.Errorf("%w: skill growth: %v", ErrInternal, firstErr)
	}

	out := TrendingSkillsResult{
		TimeRange: timeRange,
		Role:      role,
		Location:  location,
		Trends:    trends,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, trendCacheTTL)
	}
	return out, nil
}

// ForecastDemand projects demand for the given skills, or for the top-20
// trending skills over the last six months when none are given. Horizon
// bounds are the caller's responsibility.
func (u *Trends) ForecastDemand(ctx context.Context, months int, skills []string) (DemandForecast, error) {
	if months <= 0 {
		return DemandForecast{}, ErrInvalidInput
	}

	if len(skills) == 0 {
		trending, err := u.GetTrendingSkills(ctx, "6m", "", "", defaultTrendLimit)
		if err != nil {
			return DemandForecast{}, err
		}
		for _, t := range trending.Trends {
			skills = append(skills, t.Skill)
		}
	}

	now := u.now().UTC()
	projections := make([]forecast.Projection, 0, len(skills))
	for _, skill := range skills {
		projections = append(projections, forecast.Project(skill, months, now))
	}

	return DemandForecast{
		ForecastMonths: months,
		Forecasts:      projections,
		GeneratedAt:    now,
	}, nil
}

// GetSalaryTrends groups salary observations for a role by calendar month.
func (u *Trends) GetSalaryTrends(ctx context.Context, role, timeRange, location string) (SalaryTrendsResult, error) {
	if strings.TrimSpace(role) == "" {
		return SalaryTrendsResult{}, ErrInvalidInput
	}

	days := forecast.WindowDays(timeRange)
	since := u.now().UTC().AddDate(0, 0, -days)

	points, err := u.records.ListSalaryPointsSince(ctx, role, since, location)
	if err != nil {
		return SalaryTrendsResult{}, fmt.Errorf("%w: salary points: %v", ErrInternal, err)
	}
	if len(points) == 0 {
		return SalaryTrendsResult{}, ErrNoMarketData
	}

	monthly := groupSalariesByMonth(points)

	overall := 0.0
	if len(monthly) >= 2 {
		first := monthly[0].AvgSalary
		last := monthly[len(monthly)-1].AvgSalary
		if first != 0 {
			overall = round2((last - first) / first * 100)
		}
	}

	return SalaryTrendsResult{
		Role:             role,
		Location:         location,
		TimeRange:        timeRange,
		Trends:           monthly,
		OverallChangePct: overall,
	}, nil
}

func (u *Trends) skillGrowth(ctx context.Context, skill string, since, mid, now time.Time, role, location string) (float64, error) {
	recent, err := u.records.CountWithSkillPostedBetween(ctx, skill, mid, now, role, location)
	if err != nil {
		return 0, err
	}
	older, err := u.records.CountWithSkillPostedBetween(ctx, skill, since, mid, role, location)
	if err != nil {
		return 0, err
	}
	return forecast.GrowthRate(recent, older), nil
}

type skillCount struct {
	skill string
	count int
}

// topSkillCounts tallies skill occurrences across records and returns the
// top n, most frequent first. Ties keep first-seen order so ranking stays
// deterministic.
func topSkillCounts(records []job.Record, n int) []skillCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, rec := range records {
		for _, skill := range rec.RequiredSkills {
			if skill == "" {
				continue
			}
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	out := make([]skillCount, 0, len(order))
	for _, skill := range order {
		out = append(out, skillCount{skill: skill, count: counts[skill]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

func groupSalariesByMonth(points []job.SalaryPoint) []MonthlySalaryTrend {
	order := make([]string, 0)
	byMonth := make(map[string][]float64)
	for _, p := range points {
		key := p.PostedAt.UTC().Format("2006-01")
		if _, seen := byMonth[key]; !seen {
			order = append(order, key)
		}
		byMonth[key] = append(byMonth[key], p.Salary)
	}
	sort.Strings(order)

	out := make([]MonthlySalaryTrend, 0, len(order))
	for _, month := range order {
		salaries := byMonth[month]
		out = append(out, MonthlySalaryTrend{
			Month:        month,
			AvgSalary:    stats.Mean(salaries),
			MedianSalary: stats.Median(salaries),
			SampleSize:   len(salaries),
		})
	}
	return out
}
