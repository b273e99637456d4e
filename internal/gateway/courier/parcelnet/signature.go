package parcelnet

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Sign считает подпись запроса: hex(HMAC-SHA256(secret, ts "." method "." path "." body)).
func Sign(secret string, timestamp int64, method, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write([]byte(method))
	mac.Write([]byte("."))
	mac.Write([]byte(path))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify проверяет подпись за постоянное время.
func Verify(secret string, timestamp int64, method, path string, body []byte, signature string) bool {
	expected := Sign(secret, timestamp, method, path, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
