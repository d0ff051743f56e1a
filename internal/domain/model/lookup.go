package model

// LookupResult is what the presentation layer renders for a guest. An empty
// Password means no password is available; ErrorState and Error then explain
// why.
type LookupResult struct {
	Password    string
	NetworkName string
	Date        string
	ErrorState  ErrorState
	Error       string

	// Populated only when the yesterday variant is enabled and a password exists.
	YesterdayPassword string
	YesterdayDate     string
}

// Found reports whether a password is available for Date.
func (r LookupResult) Found() bool {
	return r.Password != ""
}

// HasError reports whether the lookup ended in an error state.
func (r LookupResult) HasError() bool {
	return r.ErrorState != ErrorStateNone
}
