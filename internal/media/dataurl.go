package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const dataURLPrefix = "data:"

// IsDataURL reports whether s is an inline base64 image.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, dataURLPrefix+"image/") && strings.Contains(s, ";base64,")
}

// DecodeDataURL splits "data:image/png;base64,...." into its mime type and bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	if !IsDataURL(s) {
		return "", nil, fmt.Errorf("%w: not a base64 image data url", ErrInvalidImage)
	}

	header, payload, _ := strings.Cut(strings.TrimPrefix(s, dataURLPrefix), ",")
	mime, _, _ := strings.Cut(header, ";")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return mime, data, nil
}
