package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPConfig_Origins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "comma list with spaces",
			value: "http://localhost:3000, http://127.0.0.1:3000",
			want:  []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		{
			name:  "single origin",
			value: "https://app.example.com",
			want:  []string{"https://app.example.com"},
		},
		{
			name:  "empty elements dropped",
			value: "http://a,,  ,http://b",
			want:  []string{"http://a", "http://b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{CORSOrigins: tt.value}
			assert.Equal(t, tt.want, cfg.Origins())
		})
	}
}
