package config

import "time"

const (
	defaultRequestTimeout = 15 * time.Second
	defaultLabAPITimeout  = 10 * time.Second
	defaultSessionTTL     = time.Hour
)

type InternalConfig struct {
	App           App
	LabAPI        AppLabAPI
	Session       AppSession
	ReportArchive AppReportArchive
	Events        AppEvents
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	AllowedOrigins            []string
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
}

// RequestTimeout bounds a single gateway request including its lab backend calls.
func (a App) RequestTimeout() time.Duration {
	if a.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

type AppLabAPI struct {
	BaseUrl string
	Timeout time.Duration
}

func (l AppLabAPI) RequestTimeout() time.Duration {
	if l.Timeout <= 0 {
		return defaultLabAPITimeout
	}
	return l.Timeout
}

type AppSession struct {
	// TokenTTL applies when the backend token carries no exp claim
	TokenTTL time.Duration
}

func (s AppSession) DefaultTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return defaultSessionTTL
	}
	return s.TokenTTL
}

type AppReportArchive struct {
	Enabled    bool
	BucketName string
}

type AppEvents struct {
	Enabled      bool
	ExchangeName string
}
