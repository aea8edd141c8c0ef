package config

// Defaults for the monitoring run. Sized for up to 50 watched pages per
// invocation.
const (
	DefaultMaxWatches             = 50
	DefaultAlertCooldownSecs      = 0
	DefaultDelayBetweenRequestsMs = 600
	DefaultMaxDiffLines           = 40
	DefaultMaxStoredTextChars     = 50000

	DefaultHTTPTimeoutSecs  = 25
	DefaultHTTPMaxRetries   = 2
	DefaultRetryBackoffSecs = 2
	DefaultHTTPUserAgent    = "webwatch/1.0 (+change monitor)"

	DefaultNtfyServer        = "https://ntfy.sh"
	DefaultMaxErrorsReported = 10

	DefaultStateFilePath = "state.json"
	DefaultHistoryDBPath = "webwatch_history.db"
)
