package model

import "time"

// Constants is the process-wide bag of scalar settings.
//
// The values are data only. Nothing in fixtkit retries or times out based on them.
type Constants struct {
	MaxRetries int    `yaml:"max_retries" validate:"gte=0"`
	TimeoutMS  int    `yaml:"timeout_ms" validate:"gt=0"`
	APIVersion string `yaml:"api_version" validate:"required,startswith=v"`
	RequestID  string `yaml:"request_id" validate:"required,uuid"`
}

// Timeout returns TimeoutMS as a duration.
func (c Constants) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
