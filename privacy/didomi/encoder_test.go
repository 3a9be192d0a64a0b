package didomi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieEncoder(t *testing.T) {
	encoder := CookieEncoder{}

	testCases := []struct {
		name                  string
		givenPayload          *Payload
		expectedEncodedCookie string
	}{
		{
			name:                  "empty-payload",
			givenPayload:          &Payload{},
			expectedEncodedCookie: "e30%3D",
		},
		{
			name:                  "nil-list-is-written-as-empty-array",
			givenPayload:          &Payload{Purposes: &Section{}},
			expectedEncodedCookie: "eyJwdXJwb3NlcyI6eyJkaXNhYmxlZCI6W119fQ%3D%3D",
		},
		{
			name:                  "disabled-vendor",
			givenPayload:          &Payload{Vendors: disabled(`"google"`)},
			expectedEncodedCookie: "eyJ2ZW5kb3JzIjp7ImRpc2FibGVkIjpbImdvb2dsZSJdfX0%3D",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			encodedCookie, err := encoder.Encode(test.givenPayload)
			require.NoError(t, err)
			assert.Equal(t, test.expectedEncodedCookie, encodedCookie)
		})
	}
}

func TestCookieEncoderRaw(t *testing.T) {
	encoder := CookieEncoder{}

	assert.Equal(t, "eyJwdXJwb3NlcyI6eyJkaXNhYmxlZCI6WyI%2FIl19LCJ4Ijoifn5%2BIn0%3D",
		encoder.EncodeRaw([]byte(`{"purposes":{"disabled":["?"]},"x":"~~~"}`)))
}

// Encoding a payload and reading it back must give the same verdict as judging the payload directly.
func TestEncoderDecoderRoundTrip(t *testing.T) {
	encoder := CookieEncoder{}
	decoder := CookieDecoder{}

	sectionChoices := []*Section{nil, disabled(), disabled(`"x"`), disabled(`1`, `{"id":"y"}`)}

	for _, vendors := range sectionChoices {
		for _, purposes := range sectionChoices {
			for _, vendorsLI := range sectionChoices {
				for _, purposesLI := range sectionChoices {
					payload := Payload{
						Vendors:    vendors,
						Purposes:   purposes,
						VendorsLI:  vendorsLI,
						PurposesLI: purposesLI,
					}

					value, err := encoder.Encode(&payload)
					require.NoError(t, err)

					decoded, err := decoder.Decode(map[string]string{"didomi_token": value}, "didomi_token")
					require.NoError(t, err)

					assert.Equal(t, Decide(payload), Decide(*decoded))
					assert.Equal(t, len(payload.Disabled()), len(decoded.Disabled()))
				}
			}
		}
	}
}
