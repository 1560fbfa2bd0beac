package domain

import (
	"math"
	"time"
)

// ServiceInfo describes the running service instance.
type ServiceInfo struct {
	AppName     string
	AppTitle    string
	Version     string
	Environment string
	StartedAt   time.Time
	Now         time.Time
}

// Uptime returns the time since start, in seconds rounded to two decimals.
func (i ServiceInfo) Uptime() float64 {
	secs := i.Now.Sub(i.StartedAt).Seconds()
	if secs < 0 {
		return 0
	}
	return math.Round(secs*100) / 100
}
