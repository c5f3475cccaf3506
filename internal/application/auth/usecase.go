package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/pkg/config"
	"github.com/Cakawam/cookbook/pkg/jwt"
)

// RoleAdmin único rol del sistema: operación mono-usuario.
const RoleAdmin = "admin"

// AuthUseCase login contra la credencial de administración configurada.
// No hay registro de usuarios: la credencial vive en la configuración.
type AuthUseCase struct {
	authCfg config.AuthConfig
	jwtCfg  config.JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authCfg config.AuthConfig, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{authCfg: authCfg, jwtCfg: jwtCfg}
}

// Login verifica usuario y contraseña contra la configuración y devuelve un
// JWT firmado. Prefiere el hash bcrypt; la contraseña en texto plano solo se
// acepta si no hay hash configurado.
func (uc *AuthUseCase) Login(user, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(user), []byte(uc.authCfg.AdminUser)) != 1 {
		return "", domain.ErrUnauthorized
	}
	switch {
	case uc.authCfg.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(uc.authCfg.PasswordHash), []byte(password)); err != nil {
			return "", domain.ErrUnauthorized
		}
	case uc.authCfg.Password != "":
		if subtle.ConstantTimeCompare([]byte(password), []byte(uc.authCfg.Password)) != 1 {
			return "", domain.ErrUnauthorized
		}
	default:
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, uc.authCfg.AdminUser, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
}
