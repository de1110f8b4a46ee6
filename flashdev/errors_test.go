package flashdev

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadInfoErrorMessage(t *testing.T) {
	err := &ReadInfoError{Address: 0x20000000, Size: 160}
	assert.Equal(t,
		"failed to read flash device info: read address: 0x20000000, size: 160 bytes",
		err.Error())
}

func TestIsReadInfoError(t *testing.T) {
	readErr := &ReadInfoError{Address: 0x1000, Size: 160}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "direct error",
			err:  readErr,
			want: true,
		},
		{
			name: "wrapped error",
			err:  fmt.Errorf("decoding algorithm: %w", readErr),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("something else"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReadInfoError(tt.err))
		})
	}
}
