// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// WiFiPageViewModel holds presentation-ready data for the guest WiFi page.
// Exactly one of three states renders: ErrorMessage set, Password empty, or
// Password present.
type WiFiPageViewModel struct {
	NetworkName string
	Date        string
	Password    string
	QRPayload   string

	ErrorMessage string
	ErrorState   string
	ActionText   string
	Recoverable  bool // true renders a retry button instead of a staff hint

	YesterdayPassword string
	YesterdayDate     string

	// NoticeHTML is sanitized operator notice markup, empty when unset.
	NoticeHTML string
}
