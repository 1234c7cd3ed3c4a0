package health

import (
	"time"
)

type HealthChecker struct {
	startedAt time.Time
	version   string
}

type HealthStatus struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{startedAt: time.Now(), version: version}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	return HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	}
}
