package telemetry

import (
	"context"
	"testing"
)

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), "", "test")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestExporterOptions(t *testing.T) {
	tests := []struct {
		endpoint string
		count    int
		wantErr  bool
	}{
		{"localhost:4318", 2, false},
		{"http://collector:4318", 2, false},
		{"https://collector.example.com/v1/traces", 2, false},
		{"http://", 0, true},
	}
	for _, tt := range tests {
		opts, err := exporterOptions(tt.endpoint)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: err = %v, wantErr %v", tt.endpoint, err, tt.wantErr)
		}
		if len(opts) != tt.count {
			t.Fatalf("%s: got %d options, want %d", tt.endpoint, len(opts), tt.count)
		}
	}
}
