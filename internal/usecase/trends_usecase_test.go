package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"techcareer/internal/domain/job"
)

type mockCache struct {
	store map[string][]byte
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	m.sets++
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func trendRecords(now time.Time) []job.Record {
	return []job.Record{
		// Second half of the 90-day window.
		{Title: "Backend Developer", RequiredSkills: []string{"Go", "Docker"}, PostedAt: now.AddDate(0, 0, -10), Salary: floatPtr(120000)},
		{Title: "Backend Developer", RequiredSkills: []string{"Go"}, PostedAt: now.AddDate(0, 0, -20), Salary: floatPtr(110000)},
		// First half.
		{Title: "Backend Developer", RequiredSkills: []string{"Go", "Docker"}, PostedAt: now.AddDate(0, 0, -60), Salary: floatPtr(100000)},
		{Title: "Data Scientist", RequiredSkills: []string{"Python"}, PostedAt: now.AddDate(0, 0, -70), Salary: floatPtr(130000)},
		// Outside the window entirely.
		{Title: "Backend Developer", RequiredSkills: []string{"Rust"}, PostedAt: now.AddDate(0, 0, -200), Salary: floatPtr(90000)},
	}
}

func newTrendsForTest(records []job.Record, cache MarketCache) *Trends {
	uc := NewTrendsUsecase(mockRecordRepo{records: records}, cache)
	uc.now = fixedNow
	return uc
}

func TestTrends_GetTrendingSkills(t *testing.T) {
	now := fixedNow()
	uc := newTrendsForTest(trendRecords(now), nil)

	res, err := uc.GetTrendingSkills(context.Background(), "3m", "", "", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.Trends) != 3 {
		t.Fatalf("expected Go, Docker, Python; got %+v", res.Trends)
	}
	if res.Trends[0].Skill != "Go" || res.Trends[0].Count != 3 {
		t.Fatalf("top skill = %+v", res.Trends[0])
	}

	// Go: 2 recent vs 1 older.
	if res.Trends[0].GrowthRate != 100.0 || res.Trends[0].Trend != "rising" {
		t.Fatalf("go growth = %+v", res.Trends[0])
	}
	// Python: 0 recent vs 1 older.
	for _, tr := range res.Trends {
		if tr.Skill == "Python" && tr.GrowthRate != -100.0 {
			t.Fatalf("python growth = %+v", tr)
		}
	}
}

func TestTrends_GetTrendingSkills_LimitAndFilter(t *testing.T) {
	now := fixedNow()
	uc := newTrendsForTest(trendRecords(now), nil)

	res, err := uc.GetTrendingSkills(context.Background(), "3m", "Data", "", 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Trends) != 1 || res.Trends[0].Skill != "Python" {
		t.Fatalf("trends = %+v", res.Trends)
	}
}

func TestTrends_GetTrendingSkills_CacheRoundTrip(t *testing.T) {
	now := fixedNow()
	cache := newMockCache()
	uc := newTrendsForTest(trendRecords(now), cache)

	first, err := uc.GetTrendingSkills(context.Background(), "3m", "", "", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// A second usecase over an empty store must answer from cache.
	cached := newTrendsForTest(nil, cache)
	second, err := cached.GetTrendingSkills(context.Background(), "3m", "", "", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second.Trends) != len(first.Trends) {
		t.Fatalf("cache miss: %+v vs %+v", second.Trends, first.Trends)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit should not rewrite, got %d sets", cache.sets)
	}
}

func TestTrends_ForecastDemand(t *testing.T) {
	uc := newTrendsForTest(nil, nil)

	if _, err := uc.ForecastDemand(context.Background(), 0, []string{"Go"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	res, err := uc.ForecastDemand(context.Background(), 6, []string{"Kubernetes", "Go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ForecastMonths != 6 || len(res.Forecasts) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if len(res.Forecasts[0].Months) != 6 {
		t.Fatalf("months = %d", len(res.Forecasts[0].Months))
	}
}

func TestTrends_ForecastDemand_DefaultsToTrending(t *testing.T) {
	now := fixedNow()
	uc := newTrendsForTest(trendRecords(now), nil)

	res, err := uc.ForecastDemand(context.Background(), 3, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Forecasts) == 0 {
		t.Fatalf("expected forecasts for trending skills")
	}
}

func TestTrends_GetSalaryTrends(t *testing.T) {
	now := fixedNow()
	uc := newTrendsForTest(trendRecords(now), nil)

	res, err := uc.GetSalaryTrends(context.Background(), "Backend Developer", "3m", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Trends) != 2 {
		t.Fatalf("expected two months, got %+v", res.Trends)
	}
	if res.Trends[0].Month >= res.Trends[1].Month {
		t.Fatalf("months not ascending: %+v", res.Trends)
	}
	// April's single 100000 to May's 115000 average.
	if res.OverallChangePct != 15.0 {
		t.Fatalf("overall change = %v", res.OverallChangePct)
	}
}

func TestTrends_GetSalaryTrends_NoData(t *testing.T) {
	uc := newTrendsForTest(nil, nil)

	if _, err := uc.GetSalaryTrends(context.Background(), "Astronaut", "3m", ""); !errors.Is(err, ErrNoMarketData) {
		t.Fatalf("expected ErrNoMarketData, got %v", err)
	}
	if _, err := uc.GetSalaryTrends(context.Background(), " ", "3m", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
