package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. El token expirado se distingue del resto
// (firma incorrecta, token malformado) para que el caller pueda
// responder con un mensaje más útil; ambos son resultados esperados,
// no fallos del sistema.
var (
	ErrTokenExpired = errors.New("jwt: token expirado")
	ErrTokenInvalid = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más el rol del usuario.
// Se añade Role para que el middleware pueda autorizar sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "influencer" | "business" | "admin"
}

// Config del emisor: secreto de firma, issuer y vigencia del token.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Issuer firma y verifica bearer tokens HS256 autocontenidos.
// La vigencia queda fijada al emitir; no hay revocación: un token es
// válido hasta su exp aunque la cuenta cambie después.
type Issuer struct {
	cfg Config
}

// NewIssuer construye el emisor. Un secreto vacío es un error de
// configuración y se rechaza acá, en el arranque, no por request.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &Issuer{cfg: cfg}, nil
}

// Generate emite un token firmado con claims {sub, role, iat, exp}.
func (i *Issuer) Generate(userID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.cfg.Secret))
}

// Parse valida firma y vigencia, y devuelve userID y role.
// Retorna ErrTokenExpired si el token venció; ErrTokenInvalid para
// firma incorrecta, token malformado o claims inconsistentes.
func (i *Issuer) Parse(tokenString string) (userID, role string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(i.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpired
		}
		return "", "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
