package didomi

import (
	"encoding/base64"
	"net/url"

	"github.com/edgee-cloud/didomi-component/util/jsonutil"
)

// CookieEncoder produces cookie values in the format CookieDecoder reads.
type CookieEncoder struct{}

// Encode serializes the payload and encodes it as a cookie value.
func (e CookieEncoder) Encode(p *Payload) (string, error) {
	j, err := jsonutil.Marshal(p)
	if err != nil {
		return "", err
	}
	return e.EncodeRaw(j), nil
}

// EncodeRaw encodes an already serialized JSON document as a cookie value.
func (e CookieEncoder) EncodeRaw(document []byte) string {
	b64 := base64.StdEncoding.EncodeToString(document)
	return url.QueryEscape(b64)
}
