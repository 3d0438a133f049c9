package usecase

import (
	"context"

	"go-landing-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":     "ok",
		"rate_limit": "memory",
	}
	if redis.Client() != nil {
		status["rate_limit"] = "redis"
		if err := redis.HealthCheck(ctx); err != nil {
			status["rate_limit"] = "redis_unreachable"
		}
	}
	return status
}
