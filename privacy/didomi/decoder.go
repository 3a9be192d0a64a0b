package didomi

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/edgee-cloud/didomi-component/errortypes"
	"github.com/edgee-cloud/didomi-component/util/jsonutil"
)

// Decoder reads a consent payload from the host's cookies.
type Decoder interface {
	// Decode looks up the named cookie and decodes it into a payload.
	Decode(cookies map[string]string, cookieName string) (*Payload, error)
}

// CookieDecoder reads the cookie value written by the Didomi SDK: a percent-encoded, padded
// standard base64 encoding of a JSON document.
type CookieDecoder struct{}

func (d CookieDecoder) Decode(cookies map[string]string, cookieName string) (*Payload, error) {
	value, ok := cookies[cookieName]
	if !ok {
		return nil, &errortypes.CookieNotFound{
			Message: fmt.Sprintf("cookie not found: %s", cookieName),
		}
	}

	// PathUnescape leaves '+' alone; the token never encodes spaces.
	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return nil, invalidCookieValue(err)
	}

	// The decoder would otherwise skip line breaks.
	if strings.ContainsAny(unescaped, "\r\n") {
		return nil, invalidCookieValue(errors.New("invalid line break in base64 value"))
	}
	jsonValue, err := base64.StdEncoding.Strict().DecodeString(unescaped)
	if err != nil {
		return nil, invalidCookieValue(err)
	}

	var payload Payload
	if err := jsonutil.Unmarshal(jsonValue, &payload); err != nil {
		return nil, invalidCookieValue(err)
	}
	return &payload, nil
}

func invalidCookieValue(err error) error {
	return &errortypes.InvalidCookieValue{
		Message: fmt.Sprintf("invalid cookie value: %v", err),
		Cause:   err,
	}
}
