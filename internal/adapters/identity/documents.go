package identity

import (
	"encoding/base64"
	"strings"

	perr "turnstile/internal/platform/errors"
)

// maxDocumentBytes caps one document image at 10MB of decoded payload
const maxDocumentBytes = 10 << 20

var documentPrefixes = []string{
	"data:image/jpeg;base64,",
	"data:image/jpg;base64,",
}

// ValidateDocument checks a document image is a JPEG data URL with a
// well formed base64 payload no larger than 10MB
func ValidateDocument(doc string) error {
	var payload string
	for _, p := range documentPrefixes {
		if strings.HasPrefix(doc, p) {
			payload = doc[len(p):]
			break
		}
	}
	if payload == "" {
		return perr.Validationf("document must be a base64 jpeg data url")
	}

	// decoded size from base64 length, minus padding
	n := base64.StdEncoding.DecodedLen(len(payload))
	if n > maxDocumentBytes {
		return perr.Validationf("document exceeds 10MB limit")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return perr.Validationf("document payload is not valid base64")
	}
	return nil
}
