package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo simple con mensaje (ej. delete exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}
