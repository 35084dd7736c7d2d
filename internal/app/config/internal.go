package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeout           int
	SessionExpiredTimeInHours int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
