package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")

	assert.Equal(t, NotAvailable, info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
}

func TestAppBuildInfo_WithVersionFallback(t *testing.T) {
	tests := []struct {
		name     string
		info     AppBuildInfo
		fallback string
		want     string
	}{
		{name: "missing version uses fallback", info: NewAppBuildInfo("", "", ""), fallback: "dev", want: "dev"},
		{name: "injected version wins", info: NewAppBuildInfo("1.2.3", "", ""), fallback: "dev", want: "1.2.3"},
		{name: "empty fallback keeps N/A", info: NewAppBuildInfo("", "", ""), want: NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.WithVersionFallback(tt.fallback).BuildVersion())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "today", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123", info.String())
}
