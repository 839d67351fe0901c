package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Verifier проверяет подлинность initData, которую Mini App получает от клиента.
// Алгоритм описан в документации Telegram: секретный ключ выводится из токена
// бота один раз, подпись считается по отсортированной строке key=value.
type Verifier struct {
	secret []byte
}

func NewVerifier(botToken string) *Verifier {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return &Verifier{secret: mac.Sum(nil)}
}

// Verify возвращает true только для initData, подписанной нашим ботом.
// Любая некорректная строка считается подделкой, ошибок наружу нет.
func (v *Verifier) Verify(initData string) bool {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return false
	}

	hash := values.Get("hash")
	if hash == "" {
		return false
	}
	values.Del("hash")

	// При дублировании ключа берётся первое вхождение
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	checkString := strings.Join(pairs, "\n")

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(hash))
}
