package models

// WatchMode selects the comparison strategy for a watch.
type WatchMode string

const (
	// WatchModeHash compares a digest of the normalized page text.
	WatchModeHash WatchMode = "hash"
	// WatchModeKeyword tracks presence of a keyword in the normalized text.
	WatchModeKeyword WatchMode = "keyword"
)

// Watch describes one monitored URL. Watches are immutable for the
// duration of a run; the URL is the identity key into the state store.
type Watch struct {
	Name     string
	URL      string
	Mode     WatchMode
	Keyword  string
	Selector string
	Headers  map[string]string
}
