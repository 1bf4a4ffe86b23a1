package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashea y verifica passwords con bcrypt. El salt es aleatorio
// por llamada, así que hashear dos veces el mismo password produce
// hashes distintos que verifican igual.
type Hasher struct {
	cost int
}

// New construye el hasher con el work factor indicado.
// cost <= 0 usa el default de bcrypt; valores fuera de rango se acotan.
func New(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash genera el hash salteado del password en claro.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hasher: %w", err)
	}
	return string(b), nil
}

// Verify compara password en claro contra un hash almacenado.
// Un password incorrecto NO es un error: devuelve (false, nil).
// Solo un hash corrupto o con formato inválido produce error.
func (h *Hasher) Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("hasher: hash inválido: %w", err)
}
