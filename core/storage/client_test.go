package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantHost   string
		wantScheme string
	}{
		{
			name:       "LocalMinio",
			cfg:        Config{Endpoint: "localhost:9000", AccessKey: "minioadmin", SecretKey: "minioadmin"},
			wantHost:   "localhost:9000",
			wantScheme: "http",
		},
		{
			name:       "SchemeIsStripped",
			cfg:        Config{Endpoint: "http://minio.warehouse.lan:9000", AccessKey: "k", SecretKey: "s"},
			wantHost:   "minio.warehouse.lan:9000",
			wantScheme: "http",
		},
		{
			name:       "SSLFollowsUseSSL",
			cfg:        Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"},
			wantHost:   "s3.amazonaws.com",
			wantScheme: "https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			require.NoError(t, err)

			wrapped, ok := client.(*minioClientWrapper)
			require.True(t, ok)
			assert.Equal(t, tt.wantHost, wrapped.EndpointURL().Host)
			assert.Equal(t, tt.wantScheme, wrapped.EndpointURL().Scheme)
		})
	}
}

func TestNewClient_InvalidEndpoint(t *testing.T) {
	_, err := NewClient(Config{Endpoint: "localhost:9000/manifests"})
	assert.Error(t, err)
}

func TestNewBucket_DefaultName(t *testing.T) {
	assert.Equal(t, DefaultBucket, NewBucket(nil, "").Name())
	assert.Equal(t, "dock-7", NewBucket(nil, "dock-7").Name())
}
