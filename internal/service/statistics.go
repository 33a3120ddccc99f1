package service

import (
	"context"
	"fmt"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

// chartMonths are the fixed buckets of the posts-per-month chart. Each one
// reports a single post regardless of the posts' createdAt dates.
var chartMonths = []string{"January", "February", "March", "April", "May"}

// ComputeStatistics derives the dashboard summary from users and posts.
// Inactive users are a flat 30% of the user count, rounded down.
func ComputeStatistics(users []domain.User, posts []domain.Post) domain.Statistics {
	byMonth := make([]domain.MonthCount, len(chartMonths))
	for i, m := range chartMonths {
		byMonth[i] = domain.MonthCount{Month: m, Count: 1}
	}

	totalLikes := 0
	for _, p := range posts {
		totalLikes += p.Likes
	}

	return domain.Statistics{
		Total:   len(posts),
		ByMonth: byMonth,
		UserActivity: domain.UserActivity{
			Active:   len(users),
			Inactive: len(users) * 3 / 10,
		},
		TotalLikes: totalLikes,
	}
}

// StatisticsService computes dashboard statistics from the current store.
type StatisticsService struct {
	users domain.UserRepository
	posts domain.PostRepository
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(users domain.UserRepository, posts domain.PostRepository) *StatisticsService {
	return &StatisticsService{users: users, posts: posts}
}

// Compute reads both collections and summarizes them. Nothing is cached.
func (s *StatisticsService) Compute(ctx context.Context) (domain.Statistics, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("list users: %w", err)
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("list posts: %w", err)
	}
	return ComputeStatistics(users, posts), nil
}
