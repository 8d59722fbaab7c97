package p24

import (
	"bytes"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
)

// sign hashes the compact JSON form of fields with SHA-384. HTML characters
// are left unescaped so the digest matches the gateway's.
func sign(fields any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return "", fmt.Errorf("encode sign payload: %w", err)
	}

	sum := sha512.Sum384(bytes.TrimRight(buf.Bytes(), "\n"))
	return hex.EncodeToString(sum[:]), nil
}

func signEqual(expected, got string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(got))) == 1
}

// NotificationSign computes the signature the gateway attaches to a status
// notification.
func NotificationSign(n application.Notification, crc string) (string, error) {
	return sign(notificationSignFields{
		MerchantID:   n.MerchantID,
		PosID:        n.PosID,
		SessionID:    n.SessionID,
		Amount:       n.Amount,
		OriginAmount: n.OriginAmount,
		Currency:     n.Currency,
		OrderID:      n.OrderID,
		MethodID:     n.MethodID,
		Statement:    n.Statement,
		CRC:          crc,
	})
}
