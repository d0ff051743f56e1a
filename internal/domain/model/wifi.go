package model

import (
	"fmt"
	"strings"
)

// WiFiSecurity is the authentication type advertised in the QR payload.
type WiFiSecurity string

const (
	WiFiSecurityWPA    WiFiSecurity = "WPA"
	WiFiSecurityWEP    WiFiSecurity = "WEP"
	WiFiSecurityNoPass WiFiSecurity = "nopass"
)

// Valid reports whether s is one of the known security types.
func (s WiFiSecurity) Valid() bool {
	switch s {
	case WiFiSecurityWPA, WiFiSecurityWEP, WiFiSecurityNoPass:
		return true
	}
	return false
}

// WiFiNetwork describes the guest network independent of the daily password.
type WiFiNetwork struct {
	Name     string
	Security WiFiSecurity
	Hidden   bool
}

// QRPayload builds the WIFI: URI understood by phone cameras:
//
//	WIFI:T:<security>;S:<ssid>;P:<password>;H:<hidden>;;
//
// Special characters in the SSID and password are backslash-escaped.
func (n WiFiNetwork) QRPayload(password string) string {
	security := n.Security
	if security == "" {
		security = WiFiSecurityWPA
	}
	if security == WiFiSecurityNoPass {
		password = ""
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%t;;",
		security, escapeQRField(n.Name), escapeQRField(password), n.Hidden)
}

var qrFieldEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

func escapeQRField(s string) string {
	return qrFieldEscaper.Replace(s)
}
