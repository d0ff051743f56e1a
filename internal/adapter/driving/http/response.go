package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// PasswordResponse is the JSON representation of today's password lookup.
// Password is null when no password is available; Error and ErrorState then
// explain why.
type PasswordResponse struct {
	Password    *string            `json:"password"`
	NetworkName string             `json:"network_name"`
	Date        string             `json:"date"`
	Error       string             `json:"error,omitempty"`
	ErrorState  string             `json:"error_state,omitempty"`
	Action      string             `json:"action,omitempty"`
	Recoverable bool               `json:"recoverable,omitempty"`
	Yesterday   *YesterdayResponse `json:"yesterday,omitempty"`
}

// YesterdayResponse carries the previous day's password when enabled.
type YesterdayResponse struct {
	Password string `json:"password"`
	Date     string `json:"date"`
}

// WiFiResponse describes the guest network and, when today's password is
// available, the WIFI: payload a QR code should encode.
type WiFiResponse struct {
	NetworkName string `json:"network_name"`
	Security    string `json:"security"`
	Hidden      bool   `json:"hidden"`
	QRPayload   string `json:"qr_payload,omitempty"`
}

// toPasswordResponse converts a LookupResult to its JSON representation.
func toPasswordResponse(r model.LookupResult) PasswordResponse {
	resp := PasswordResponse{
		NetworkName: r.NetworkName,
		Date:        r.Date,
	}

	if r.Found() {
		pw := r.Password
		resp.Password = &pw
	}

	if r.HasError() {
		resp.Error = r.Error
		resp.ErrorState = string(r.ErrorState)
		resp.Action = r.ErrorState.ActionText()
		resp.Recoverable = r.ErrorState.Recoverable()
	}

	if r.YesterdayPassword != "" {
		resp.Yesterday = &YesterdayResponse{
			Password: r.YesterdayPassword,
			Date:     r.YesterdayDate,
		}
	}

	return resp
}

// toWiFiResponse converts the configured network and today's lookup into a
// WiFiResponse.
func toWiFiResponse(network model.WiFiNetwork, r model.LookupResult) WiFiResponse {
	security := network.Security
	if security == "" {
		security = model.WiFiSecurityWPA
	}

	resp := WiFiResponse{
		NetworkName: network.Name,
		Security:    string(security),
		Hidden:      network.Hidden,
	}
	if r.Found() {
		resp.QRPayload = network.QRPayload(r.Password)
	}
	return resp
}
