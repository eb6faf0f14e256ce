package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse resultado de operaciones que responden con un mensaje
// localizado (cambio de contraseña, validaciones del perfil).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
