package models

// WatchState is the persisted record for one watched URL. Exactly one of
// the hash-shaped (Hash/Text) or keyword-shaped (Found) field groups is
// meaningful at a time, matching the watch's current mode. If a watch's
// mode changes between runs, the first run under the new mode re-baselines
// against the new mode's fields.
type WatchState struct {
	// Hash mode fields.
	Hash string `json:"hash,omitempty"`
	// Text holds a clamped copy of the normalized text so the next changed
	// observation can produce a diff.
	Text string `json:"text,omitempty"`

	// Keyword mode field. Nil means the keyword has never been observed.
	Found *bool `json:"found,omitempty"`

	// Timestamp (epoch seconds) of the last successful observation,
	// changed or not.
	Timestamp int64 `json:"ts"`
	// LastAlertTimestamp (epoch seconds) advances only when a change was
	// eligible for notification. Zero means no alert has ever fired.
	LastAlertTimestamp int64 `json:"last_alert_ts,omitempty"`
}

// HasHashBaseline reports whether a hash-mode baseline exists.
func (s *WatchState) HasHashBaseline() bool {
	return s != nil && s.Hash != ""
}

// HasKeywordBaseline reports whether a keyword-mode baseline exists.
func (s *WatchState) HasKeywordBaseline() bool {
	return s != nil && s.Found != nil
}
