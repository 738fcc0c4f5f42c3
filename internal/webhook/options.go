package webhook

import (
	"net/http"
	"time"
)

// Options configures a Dispatcher. Zero values take defaults.
type Options struct {
	Workers              int
	QueueSize            int
	Timeout              time.Duration
	MaxAttempts          int
	AutoDisableThreshold int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	ResponseBodyMaxLen   int
	UserAgent            string

	HTTPClient *http.Client
	Now        func() time.Time
}

func (o *Options) setDefaults() {
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 1000
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 5
	}
	if o.AutoDisableThreshold < 0 {
		o.AutoDisableThreshold = 0
	}
	if o.InitialInterval <= 0 {
		o.InitialInterval = time.Second
	}
	if o.MaxInterval <= 0 {
		o.MaxInterval = time.Minute
	}
	if o.ResponseBodyMaxLen <= 0 {
		o.ResponseBodyMaxLen = 2048
	}
	if o.UserAgent == "" {
		o.UserAgent = "widget-admin-webhooks/1.0"
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}
