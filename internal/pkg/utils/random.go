package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTempPassword returns a random password of the given length
// drawn from an unambiguous alphanumeric alphabet.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		length = 12
	}

	var sb strings.Builder
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(passwordAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// UsernameBase derives the login base from an email address: the
// lowercased local part with anything outside [a-z0-9._-] stripped.
func UsernameBase(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)

	var sb strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' || r == '-' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "user"
	}
	return sb.String()
}
