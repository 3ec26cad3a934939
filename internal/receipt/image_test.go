package receipt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carline/internal/domain"
	"carline/internal/receipt"
)

func validBase64(n int) string {
	return strings.Repeat("Ab0+/9zQ", n/8+1)[:n]
}

func TestCleanImage_StripsDataURLPrefix(t *testing.T) {
	body := validBase64(200)
	cleaned, err := receipt.CleanImage("data:image/jpeg;base64," + body)
	require.NoError(t, err)
	assert.Equal(t, body, cleaned)
}

func TestCleanImage_AcceptsBarePayload(t *testing.T) {
	body := validBase64(150)
	cleaned, err := receipt.CleanImage(body)
	require.NoError(t, err)
	assert.Equal(t, body, cleaned)
}

func TestCleanImage_AcceptsPadding(t *testing.T) {
	body := validBase64(150) + "=="
	cleaned, err := receipt.CleanImage(body)
	require.NoError(t, err)
	assert.Equal(t, body, cleaned)
}

func TestCleanImage_TooShort(t *testing.T) {
	_, err := receipt.CleanImage(validBase64(99))
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestCleanImage_TooShortAfterPrefixStrip(t *testing.T) {
	// 120 chars total but under 100 once the prefix is removed.
	payload := "data:image/png;base64," + validBase64(98)
	_, err := receipt.CleanImage(payload)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestCleanImage_RejectsNonBase64(t *testing.T) {
	body := validBase64(150) + "!!"
	_, err := receipt.CleanImage(body)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestCleanImage_RejectsEmpty(t *testing.T) {
	_, err := receipt.CleanImage("")
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestCleanImage_PrefixOnlyStrippedOnce(t *testing.T) {
	// A second prefix inside the payload is not valid base64 alphabet.
	payload := "data:image/jpeg;base64,data:image/jpeg;base64," + validBase64(150)
	_, err := receipt.CleanImage(payload)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}
