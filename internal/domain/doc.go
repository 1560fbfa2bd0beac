// Package domain holds the service's domain types and rules: sentinel
// errors, field-level validation errors, the Fibonacci computation and the
// service information reported by the info endpoint.
package domain
