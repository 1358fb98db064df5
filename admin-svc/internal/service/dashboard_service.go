package service

import (
	"context"
	"log"
	"time"

	"pastelaria/domain"
)

type DashboardService struct {
	orders OrderRepository
	cache  DashboardCache
	loc    *time.Location
	now    func() time.Time
}

// NewDashboardService computes "today" in loc. cache may be nil.
func NewDashboardService(orders OrderRepository, cache DashboardCache, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{orders: orders, cache: cache, loc: loc, now: time.Now}
}

// WithClock replaces the wall clock, for tests.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) window() (string, time.Time, time.Time) {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return start.Format("2006-01-02"), start, start.AddDate(0, 0, 1)
}

// Today never fails: when orders cannot be read the stats are all zero.
func (s *DashboardService) Today(ctx context.Context) domain.DashboardStats {
	day, from, to := s.window()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, day)
		if err != nil {
			log.Printf("[admin-svc] WARNING: dashboard cache read failed: %v", err)
		} else if cached != nil {
			return *cached
		}
	}

	orders, err := s.orders.GetOrdersBetween(ctx, from, to)
	if err != nil {
		log.Printf("[admin-svc] WARNING: dashboard orders unavailable: %v", err)
		return domain.DashboardStats{}
	}

	stats := Aggregate(orders)
	if s.cache != nil {
		if err := s.cache.Set(ctx, day, stats); err != nil {
			log.Printf("[admin-svc] WARNING: dashboard cache write failed: %v", err)
		}
	}
	return stats
}

func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	day, _, _ := s.window()
	if err := s.cache.Invalidate(ctx, day); err != nil {
		log.Printf("[admin-svc] WARNING: dashboard cache invalidation failed: %v", err)
	}
}

// Aggregate counts orders by status; revenue only includes delivered orders.
func Aggregate(orders []domain.Order) domain.DashboardStats {
	stats := domain.DashboardStats{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusDelivering:
			stats.Delivering++
		case domain.StatusDelivered:
			stats.Delivered++
			stats.TotalRevenue += order.TotalAmount
		}
	}
	stats.TotalRevenue = domain.RoundCents(stats.TotalRevenue)
	return stats
}
