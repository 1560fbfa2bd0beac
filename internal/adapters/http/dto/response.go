// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/demo-bd/internal/domain"
)

// InfoTimestampLayout renders InfoResponse.Timestamp in UTC with microseconds.
const InfoTimestampLayout = "2006-01-02T15:04:05.000000Z"

// StatusResponse is a plain message body.
type StatusResponse struct {
	Message string `json:"message"`
}

// InfoResponse describes the running service instance.
type InfoResponse struct {
	AppName       string  `json:"appName"`
	AppTitle      string  `json:"appTitle"`
	Version       string  `json:"version"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	Environment   string  `json:"environment"`
}

// ToInfoResponse converts domain.ServiceInfo to its HTTP representation.
func ToInfoResponse(info domain.ServiceInfo) InfoResponse {
	return InfoResponse{
		AppName:       info.AppName,
		AppTitle:      info.AppTitle,
		Version:       info.Version,
		Timestamp:     info.Now.UTC().Format(InfoTimestampLayout),
		UptimeSeconds: info.Uptime(),
		Environment:   info.Environment,
	}
}

// HealthResponse is the liveness and readiness body. Checks is only set on
// readiness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
