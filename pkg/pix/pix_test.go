package pix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "email lowercased and trimmed", input: "  Dono@Quadra.COM ", want: "dono@quadra.com"},
		{name: "cpf with punctuation", input: "123.456.789-09", want: "12345678909"},
		{name: "phone with country code", input: "+55 (11) 91234-5678", want: "5511912345678"},
		{name: "cnpj", input: "12.345.678/0001-95", want: "12345678000195"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "--..", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

func TestPayload(t *testing.T) {
	payload, err := Payload("dono@quadra.com", "Arena Central", "Sao Paulo", 150.0)
	require.NoError(t, err)

	// Индикатор формата в начале
	assert.True(t, strings.HasPrefix(payload, "000201"))

	// Поле счета содержит GUI и нормализованный ключ
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "dono@quadra.com")

	// Валюта BRL и сумма с двумя знаками
	assert.Contains(t, payload, "5303986")
	assert.Contains(t, payload, "5406150.00")

	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "Arena Central")
	assert.Contains(t, payload, "Sao Paulo")

	// CRC: id 6304 и ровно 4 hex-символа в конце
	crcIdx := strings.LastIndex(payload, "6304")
	require.NotEqual(t, -1, crcIdx)
	crc := payload[crcIdx+4:]
	require.Len(t, crc, 4)
	assert.Regexp(t, "^[0-9A-F]{4}$", crc)
}

func TestPayload_TruncatesLongFields(t *testing.T) {
	longName := strings.Repeat("A", 40)
	longCity := strings.Repeat("B", 30)

	payload, err := Payload("12345678909", longName, longCity, 10.0)
	require.NoError(t, err)

	assert.Contains(t, payload, "5925"+strings.Repeat("A", 25))
	assert.Contains(t, payload, "6015"+strings.Repeat("B", 15))
	assert.NotContains(t, payload, strings.Repeat("A", 26))
}

func TestPayload_Deterministic(t *testing.T) {
	first, err := Payload("dono@quadra.com", "Arena", "Recife", 75.5)
	require.NoError(t, err)

	second, err := Payload("dono@quadra.com", "Arena", "Recife", 75.5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPayload_Errors(t *testing.T) {
	_, err := Payload("", "Arena", "Recife", 10.0)
	assert.ErrorIs(t, err, ErrEmptyKey)

	// Ключ, схлопывающийся в пустую строку после нормализации
	_, err = Payload("---", "Arena", "Recife", 10.0)
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = Payload("dono@quadra.com", "Arena", "Recife", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Payload("dono@quadra.com", "Arena", "Recife", -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
