package helper

import "golang.org/x/crypto/bcrypt"

// BcryptCost matches the cost the platform has always used for stored
// credentials; bootstrap and seeding reuse it so hashes stay interchangeable.
const BcryptCost = 12

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
