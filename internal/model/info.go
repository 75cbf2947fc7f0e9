package model

import "time"

// Endpoint describes one public route on the service index.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// ServiceInfo is the body of the index route.
type ServiceInfo struct {
	Service        string     `json:"service"`
	Timestamp      time.Time  `json:"timestamp"`
	Driver         string     `json:"driver"`
	TotalProducts  int64      `json:"total_products"`
	TotalEmployees int64      `json:"total_employees"`
	Endpoints      []Endpoint `json:"endpoints"`
}
