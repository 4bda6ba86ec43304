package metrics

import (
	"testing"

	"github.com/lvargas/catalogos-backend/config"
	"github.com/stretchr/testify/assert"
)

func TestStatusRange(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{204, "2xx"},
		{404, "4xx"},
		{409, "4xx"},
		{422, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{302, "other"},
		{101, "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StatusRange(tt.statusCode), "status %d", tt.statusCode)
	}
}

func TestCollector_WithoutCredentials(t *testing.T) {
	collector := New(&config.CloudWatchConfig{
		Region:    "us-east-1",
		Namespace: "CatalogosAPI",
	}, "test")

	assert.False(t, collector.Enabled())

	// Log-only mode must not panic or block
	collector.RecordLatency("GET /clientes", 12.5)
	collector.RecordHTTPStatus("GET /clientes", 200)
	collector.RecordError("panic", "boom")
}
