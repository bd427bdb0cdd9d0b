// Package pix formats static PIX "copia e cola" payloads (EMV-MPM BR Code).
package pix

import (
	"errors"
	"fmt"
	"strings"
)

const (
	pixGUI = "br.gov.bcb.pix"

	maxMerchantLen = 25
	maxCityLen     = 15
)

// ErrInvalidAmount is returned when the charge amount is not positive
var ErrInvalidAmount = errors.New("pix: amount must be greater than zero")

// ErrEmptyKey is returned when no PIX key is supplied
var ErrEmptyKey = errors.New("pix: key is required")

// NormalizeKey canonicalizes a PIX key before it is embedded in a payload.
// Email keys are trimmed and lowercased; any other key kind (CPF, CNPJ or
// phone) is reduced to its digits.
func NormalizeKey(key string) string {
	if strings.Contains(key, "@") {
		return strings.ToLower(strings.TrimSpace(key))
	}

	var digits strings.Builder
	for _, r := range key {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// Payload builds the static BR Code payload for a charge.
// Merchant name and city are truncated to the EMV field limits
// (25 and 15 characters).
func Payload(key, merchant, city string, amount float64) (string, error) {
	normalized := NormalizeKey(key)
	if normalized == "" {
		return "", ErrEmptyKey
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	if len(merchant) > maxMerchantLen {
		merchant = merchant[:maxMerchantLen]
	}
	if len(city) > maxCityLen {
		city = city[:maxCityLen]
	}

	account := emv("00", pixGUI) + emv("01", normalized)

	var b strings.Builder
	b.WriteString(emv("00", "01"))                       // payload format indicator
	b.WriteString(emv("26", account))                    // merchant account information
	b.WriteString(emv("52", "0000"))                     // merchant category code
	b.WriteString(emv("53", "986"))                      // currency: BRL
	b.WriteString(emv("54", fmt.Sprintf("%.2f", amount)))
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", merchant))
	b.WriteString(emv("60", city))
	b.WriteString(emv("62", emv("05", "***"))) // txid
	b.WriteString("6304")

	payload := b.String()
	return payload + crc16(payload), nil
}

// emv encodes a single id-length-value EMV field
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// crc16 computes CRC16-CCITT (poly 0x1021, init 0xFFFF) as uppercase hex
func crc16(data string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
