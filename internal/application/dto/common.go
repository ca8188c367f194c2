package dto

// ErrorResponse cuerpo de error HTTP: {"error": "..."} con mensaje en español.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse respuesta de creación: id generado + mensaje.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse respuesta de mutación sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse respuesta booleana simple (logout).
type SuccessResponse struct {
	Success bool `json:"success"`
}
