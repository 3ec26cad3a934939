package receipt

import (
	"regexp"

	"carline/internal/domain"
)

// Minimum cleaned length; anything shorter cannot be a real photo.
const minImageChars = 100

var (
	dataURLPrefix  = regexp.MustCompile(`^data:image/[a-z]+;base64,`)
	base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
)

// CleanImage strips an optional data-URL prefix from a base64-encoded image
// and verifies the remainder is plausible base64 of useful length. It is a
// cheap gate before the costly upstream call; it does not verify the bytes
// decode to a real image.
func CleanImage(s string) (string, error) {
	cleaned := dataURLPrefix.ReplaceAllString(s, "")
	if len(cleaned) < minImageChars {
		return "", domain.ErrInvalidImage
	}
	if !base64Alphabet.MatchString(cleaned) {
		return "", domain.ErrInvalidImage
	}
	return cleaned, nil
}
