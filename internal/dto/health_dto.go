package dto

import "time"

type HealthResponse struct {
	Status    string    `json:"status"`
	App       string    `json:"app"`
	Version   string    `json:"version"`
	Uptime    int64     `json:"uptime"`
	DB        bool      `json:"db"`
	AI        bool      `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}
