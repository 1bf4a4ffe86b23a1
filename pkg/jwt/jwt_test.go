package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func newTestIssuer(t *testing.T, ttl time.Duration) *Issuer {
	t.Helper()
	iss, err := NewIssuer(Config{Secret: testSecret, Issuer: "creators-api-test", TTL: ttl})
	require.NoError(t, err)
	return iss
}

// Round-trip: Parse(Generate(id, role)) devuelve id y role antes del exp.
func TestIssuer_GenerateAndParse(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)

	tok, err := iss.Generate(testUserID, "influencer")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "influencer", role)
}

// Token vencido: TTL negativo emite un token ya expirado (equivale a
// esperar más que la vigencia).
func TestIssuer_TokenExpirado(t *testing.T) {
	iss := newTestIssuer(t, -time.Minute)

	tok, err := iss.Generate(testUserID, "admin")
	require.NoError(t, err)

	_, _, err = iss.Parse(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired, "la expiración debe distinguirse del resto")
}

// Firma con otro secreto invalida el token.
func TestIssuer_SecretIncorrecto(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	otro, err := NewIssuer(Config{Secret: "otro-secret-completamente-distinto"})
	require.NoError(t, err)

	tok, err := iss.Generate(testUserID, "admin")
	require.NoError(t, err)

	_, _, err = otro.Parse(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

// Token malformado.
func TestIssuer_TokenMalformado(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)

	_, _, err := iss.Parse("token.invalido.aqui")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// Secreto vacío es un error de configuración: el emisor no se construye.
func TestNewIssuer_SecretVacio(t *testing.T) {
	_, err := NewIssuer(Config{Secret: ""})
	assert.Error(t, err)
}

// TTL cero usa el default de 24 horas.
func TestNewIssuer_TTLDefault(t *testing.T) {
	iss, err := NewIssuer(Config{Secret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, iss.cfg.TTL)
}
