package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/ports"
	"github.com/jhoicas/shipment-intake-api/internal/domain"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
	"github.com/jhoicas/shipment-intake-api/pkg/jwt"
)

// Mensajes localizados que la UI muestra tal cual.
const (
	MsgPasswordChanged    = "تم تغيير كلمة المرور بنجاح."
	MsgCurrentPasswordBad = "كلمة المرور الحالية غير صحيحة."
	MsgInvalidCredentials = "اسم المستخدم أو كلمة المرور غير صحيحة"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login, rehidratación, logout y cambio
// de contraseña. La verificación de credenciales queda detrás de un puerto
// para poder sustituir el verificador en memoria por un backend real sin
// tocar los puntos de llamada.
type AuthUseCase struct {
	verifier ports.CredentialVerifier
	sessions repository.SessionStore
	jwtCfg   JWTConfig
	delay    time.Duration // latencia simulada del mock original; 0 la desactiva
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(verifier ports.CredentialVerifier, sessions repository.SessionStore, jwtCfg JWTConfig, delay time.Duration) *AuthUseCase {
	return &AuthUseCase{verifier: verifier, sessions: sessions, jwtCfg: jwtCfg, delay: delay}
}

// Login verifica la credencial, registra la sesión y emite el JWT que la
// referencia. En fallo devuelve domain.ErrUnauthorized sin más detalle y el
// estado queda sin cambios.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}
	user, err := uc.verifier.Verify(in.Username, in.Password)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	if err := uc.sessions.Put(sessionID, *user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Username: user.Username},
	}, nil
}

// Resume rehidrata la identidad desde el registro de sesión (el camino de
// "recarga de página"). Una sesión ausente o cerrada devuelve
// domain.ErrSessionExpired: el llamador arranca como no autenticado.
func (uc *AuthUseCase) Resume(sessionID string) (*dto.UserResponse, error) {
	user, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrSessionExpired
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username}, nil
}

// Logout elimina el registro de sesión. Síncrono y sin modo de fallo;
// cerrar una sesión inexistente es un no-op.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.sessions.Delete(sessionID)
}

// ChangePassword valida la contraseña vigente y reemplaza la credencial;
// los logins posteriores validan contra la nueva. Devuelve el mensaje
// localizado de éxito o de rechazo (nunca error para el desajuste de
// credencial: la UI lo muestra inline).
func (uc *AuthUseCase) ChangePassword(ctx context.Context, currentPassword, newPassword string) (*dto.MessageResponse, error) {
	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if err := uc.verifier.UpdatePassword(currentPassword, newPassword); err != nil {
		if err == domain.ErrUnauthorized {
			return &dto.MessageResponse{Success: false, Message: MsgCurrentPasswordBad}, nil
		}
		return nil, err
	}
	return &dto.MessageResponse{Success: true, Message: MsgPasswordChanged}, nil
}

// simulateLatency reproduce el retardo artificial del mock original
// (costura de test, configurable; por defecto desactivado).
func (uc *AuthUseCase) simulateLatency(ctx context.Context) error {
	if uc.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(uc.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
