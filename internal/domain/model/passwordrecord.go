package model

import "time"

// PasswordRecord is one row of the password table: the WiFi password that is
// valid on a single calendar day.
type PasswordRecord struct {
	Date     string // DD/MM/YYYY
	Password string
}

// ParseResult holds the records accepted from a password table together with
// the per-row warnings collected while parsing. A successful parse always
// carries at least one record.
type ParseResult struct {
	Records  []PasswordRecord
	Warnings []string
}

// SourceInfo identifies the resolved password table and its freshness stamp.
// Two SourceInfo values with the same Identifier and ModifiedAt describe the
// same table contents.
type SourceInfo struct {
	Identifier string
	ModifiedAt time.Time
}

// Same reports whether other describes the same source at the same revision.
func (s SourceInfo) Same(other SourceInfo) bool {
	return s.Identifier == other.Identifier && s.ModifiedAt.Equal(other.ModifiedAt)
}
