package service

import (
	"github.com/smartcity/erbil-dashboard/internal/domain"
)

// RenderLogRepository is re-exported from domain for convenience
type RenderLogRepository = domain.RenderLogRepository
