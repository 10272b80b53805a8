package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse estado del datastore (ruta admin).
type StatusResponse struct {
	DBStatus string `json:"dbStatus"` // connected | disconnected
	Time     string `json:"time"`     // RFC3339
}
