package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  float64
		wantError bool
	}{
		{name: "plain comma", input: "12,90", expected: 12.90},
		{name: "currency prefix", input: "R$ 99,90", expected: 99.90},
		{name: "integer", input: "8", expected: 8},
		{name: "dot is stripped", input: "12.90", expected: 1290},
		{name: "minus sign is stripped", input: "-5,00", expected: 5},
		{name: "empty", input: "", wantError: true},
		{name: "letters only", input: "abc", wantError: true},
		{name: "two commas", input: "1,2,3", wantError: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			price, err := ParsePrice(testCase.input)
			if testCase.wantError {
				assert.True(t, IsValidation(err))
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, testCase.expected, price, 0.0001)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "25,80", FormatBRL(25.8))
	assert.Equal(t, "0,00", FormatBRL(0))
	assert.Equal(t, "99,90", FormatBRL(99.9))
	assert.Equal(t, "1,00", FormatBRL(0.999))
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantError bool
	}{
		{name: "13 digits", input: "5519992450000", expected: "5519992450000"},
		{name: "10 digits trimmed", input: " 1999245000 ", expected: "1999245000"},
		{name: "too short", input: "123456789", wantError: true},
		{name: "too long", input: "55199924500001", wantError: true},
		{name: "formatted", input: "(19) 99245-0000", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			phone, err := ValidatePhone(testCase.input)
			if testCase.wantError {
				assert.True(t, IsValidation(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, phone)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "digits", input: "5519992450000", expected: "5519992450000"},
		{name: "formatted", input: "+55 (19) 99245-0000", expected: "5519992450000"},
		{name: "letters only", input: "abc", expected: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, NormalizePhone(testCase.input))
		})
	}
}

func TestNormalizeSetting(t *testing.T) {
	value, err := NormalizeSetting(SettingDeliveryFee, "R$ 7,50")
	assert.NoError(t, err)
	assert.Equal(t, "7.50", value)

	value, err = NormalizeSetting(SettingDeliveryFee, "6.00")
	assert.NoError(t, err)
	assert.Equal(t, "6.00", value)

	value, err = NormalizeSetting(SettingSiteTitle, "  Pastelaria  ")
	assert.NoError(t, err)
	assert.Equal(t, "Pastelaria", value)

	_, err = NormalizeSetting(SettingSiteTitle, " ")
	assert.True(t, IsValidation(err))

	_, err = NormalizeSetting(SettingWhatsAppNumber, "12")
	assert.True(t, IsValidation(err))

	_, err = NormalizeSetting("color", "red")
	assert.True(t, IsValidation(err))
}

func TestDeliveryFeeAndDefaults(t *testing.T) {
	assert.Equal(t, 5.00, DeliveryFee(map[string]string{}))
	assert.Equal(t, 7.50, DeliveryFee(map[string]string{SettingDeliveryFee: "7.50"}))
	assert.Equal(t, 7.50, DeliveryFee(map[string]string{SettingDeliveryFee: "7,50"}))

	merged := MergeDefaults(map[string]string{SettingSiteTitle: "Outra", SettingDeliveryFee: ""})
	assert.Equal(t, "Outra", merged[SettingSiteTitle])
	assert.Equal(t, "5.00", merged[SettingDeliveryFee])
	assert.Equal(t, "5519992450000", merged[SettingWhatsAppNumber])
}

func TestStatusAndCategory(t *testing.T) {
	s, err := ParseStatus("delivering")
	assert.NoError(t, err)
	assert.Equal(t, "Saiu para entrega", s.Label())
	assert.False(t, s.Terminal())

	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())

	_, err = ParseStatus("shipped")
	assert.True(t, IsValidation(err))

	assert.Equal(t, "Pastéis", CategoryLabel("pasteis"))
	assert.Equal(t, "sobremesas", CategoryLabel("sobremesas"))
}
