package p24

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		fields any
		want   string
	}{
		{
			name: "register",
			fields: registerSignFields{
				SessionID:  "GAL-1-abc",
				MerchantID: 11111,
				Amount:     3000,
				Currency:   "PLN",
				CRC:        "crc-secret",
			},
			want: "399f5e235b66624b4d613f5dac1bc23a9aa6abfec28b2b45a012eb4c1f501b128862dd4fb7f3e0ba493bf30a16e7db9f",
		},
		{
			name: "notification keeps html characters unescaped",
			fields: notificationSignFields{
				MerchantID:   11111,
				PosID:        11111,
				SessionID:    "GAL-1-abc",
				Amount:       3000,
				OriginAmount: 3000,
				Currency:     "PLN",
				OrderID:      987654,
				MethodID:     25,
				Statement:    "p24-A1-B2 <&>",
				CRC:          "crc-secret",
			},
			want: "90e1fc531cadd5b1d9896eef4ecb0b4a684645e076f0aee82b6cab35dfdc6be20286cc58502339129d1b0e251b246376",
		},
		{
			name: "verify",
			fields: verifySignFields{
				SessionID: "GAL-1-abc",
				OrderID:   987654,
				Amount:    3000,
				Currency:  "PLN",
				CRC:       "crc-secret",
			},
			want: "3aa84662bff2cc26b6bfdd9c7c5dd458d6977fe47d3ba75268450130ae75137b5a966294b0b9dd0348177aa5f67c7a53",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sign(tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignEqual(t *testing.T) {
	expected := "399f5e235b66624b4d613f5dac1bc23a9aa6abfec28b2b45a012eb4c1f501b128862dd4fb7f3e0ba493bf30a16e7db9f"

	assert.True(t, signEqual(expected, expected))
	assert.True(t, signEqual(expected, strings.ToUpper(expected)))
	assert.False(t, signEqual(expected, expected[:len(expected)-1]))
	assert.False(t, signEqual(expected, ""))
}
