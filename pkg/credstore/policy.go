package credstore

// MinPasswordLength is the minimum accepted password length in bytes.
const MinPasswordLength = 8

// ValidatePassword enforces the registration password policy: at least
// MinPasswordLength bytes, with at least one ASCII letter and one ASCII
// digit. Classification is byte-wise ASCII on purpose; multi-byte runes
// count toward length but not toward the letter/digit requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		}
	}

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}
