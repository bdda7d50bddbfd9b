package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a bcrypt digest at the default cost (10). The
// digest embeds its own salt and parameters, so verification needs no
// external state.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
