package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService maneja el login del operador admin. No hay cuentas de
// usuario final: los usuarios de users.dat son filas demográficas del
// dataset, no identidades con credenciales.
type AuthService struct {
	jwtSecret []byte
	adminUser string
	adminHash string
}

func NewAuthService(secret, adminUser, adminHash string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		adminUser: adminUser,
		adminHash: adminHash,
	}
}

// Login valida las credenciales del admin contra el hash bcrypt
// configurado y emite un JWT con role=admin.
func (s *AuthService) Login(username, password string) (string, error) {
	if s.adminHash == "" {
		return "", fmt.Errorf("login deshabilitado (sin ADMIN_PASSWORD_HASH)")
	}
	if username != s.adminUser {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
