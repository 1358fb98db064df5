package domain

import (
	"regexp"
	"strings"
)

const (
	SettingWhatsAppNumber = "whatsapp_number"
	SettingDeliveryFee    = "delivery_fee"
	SettingSiteTitle      = "site_title"
)

var DefaultSettings = map[string]string{
	SettingWhatsAppNumber: "5519992450000",
	SettingDeliveryFee:    "5.00",
	SettingSiteTitle:      "Pastelaria Itoman",
}

var phonePattern = regexp.MustCompile(`^\d{10,13}$`)

// ValidatePhone checks a country+area+subscriber digit string.
func ValidatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if !phonePattern.MatchString(phone) {
		return "", &ValidationError{Field: "phone", Message: "use digits only (country + area code + number)"}
	}
	return phone, nil
}

// NormalizePhone drops everything but digits, so "+55 (19) 99245-0000" becomes
// "5519992450000". The result still has to pass ValidatePhone.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// NormalizeSetting validates a value for a known key and returns the form to store.
func NormalizeSetting(key, value string) (string, error) {
	switch key {
	case SettingWhatsAppNumber:
		return ValidatePhone(value)
	case SettingDeliveryFee:
		fee, err := parseFee(value)
		if err != nil {
			return "", &ValidationError{Field: key, Message: err.Error()}
		}
		return strings.Replace(FormatBRL(fee), ",", ".", 1), nil
	case SettingSiteTitle:
		value = strings.TrimSpace(value)
		if value == "" {
			return "", &ValidationError{Field: key, Message: "site title is required"}
		}
		return value, nil
	default:
		return "", &ValidationError{Field: "key", Message: "unknown setting " + key}
	}
}

// MergeDefaults fills absent keys so readers always see a complete set.
func MergeDefaults(settings map[string]string) map[string]string {
	merged := make(map[string]string, len(DefaultSettings))
	for k, v := range DefaultSettings {
		merged[k] = v
	}
	for k, v := range settings {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}

// DeliveryFee reads the fee setting, "5.00" or "5,00", falling back to the default.
func DeliveryFee(settings map[string]string) float64 {
	raw, ok := settings[SettingDeliveryFee]
	if !ok || raw == "" {
		raw = DefaultSettings[SettingDeliveryFee]
	}
	fee, err := parseFee(raw)
	if err != nil {
		return 5.00
	}
	return fee
}

// parseFee also accepts the stored "5.00" form, where the dot is the decimal point.
func parseFee(raw string) (float64, error) {
	if !strings.Contains(raw, ",") {
		raw = strings.Replace(raw, ".", ",", 1)
	}
	return ParsePrice(raw)
}
