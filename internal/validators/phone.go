package validators

import "strings"

// NormalizePhone mantém só os dígitos (aceita "(11) 98765-4321" etc).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid aceita fixo ou celular, com ou sem DDI.
func IsPhoneValid(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) >= 8 && len(digits) <= 13
}
