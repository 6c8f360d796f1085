package server_test

import (
	"testing"
	"time"

	"interface-reconciler/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Plain", "9000", ":9000"},
		{"Colon", ":9000", ":9000"},
		{"Spaces", " 9000 ", ":9000"},
		{"Empty", "", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_ReadTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, server.Config{}.ReadTimeout())
	assert.Equal(t, 5*time.Second, server.Config{ReadTimeoutSeconds: 5}.ReadTimeout())
}
