package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Normalizer turns user-typed numbers into E.164. Numbers without a
// country prefix are read in the default region.
type Normalizer struct {
	region string
}

func NewNormalizer(region string) (*Normalizer, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if _, ok := phonenumbers.GetSupportedRegions()[region]; !ok {
		return nil, fmt.Errorf("unsupported phone region %q", region)
	}
	return &Normalizer{region: region}, nil
}

// Normalize returns "" for an empty input.
func (n *Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, n.region)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhone, err.Error())
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
