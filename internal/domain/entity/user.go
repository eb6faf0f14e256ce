package entity

// User es la identidad de la sesión del dashboard. El sistema es
// single-tenant con un único usuario provisto por configuración; la
// credencial vive como hash bcrypt detrás del puerto de verificación,
// nunca en texto plano.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
