package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Detail  string   `json:"detail,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// CreatedResponse respuesta de creación o actualización: {id, message}.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse respuesta con solo mensaje (DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}
