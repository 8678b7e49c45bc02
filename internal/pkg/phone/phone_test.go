//go:build unit

package phone_test

import (
	"testing"

	"venue-booking/internal/pkg/phone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizer(t *testing.T) {
	_, err := phone.NewNormalizer("XX")
	assert.Error(t, err)

	_, err = phone.NewNormalizer(" pl ")
	assert.NoError(t, err)
}

func TestNormalize(t *testing.T) {
	n, err := phone.NewNormalizer("PL")
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "empty", raw: "  ", want: ""},
		{name: "international", raw: "+48 600 100 200", want: "+48600100200"},
		{name: "national", raw: "600-100-200", want: "+48600100200"},
		{name: "other region with prefix", raw: "+44 20 7946 0958", want: "+442079460958"},
		{name: "letters", raw: "call me", wantErr: true},
		{name: "too short", raw: "123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, phone.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
