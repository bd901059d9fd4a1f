package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCertificate_ProducesPDF(t *testing.T) {
	pdf, err := RenderCertificate("Alice Smith", "Go Basics", "August 30, 2026", "CERT-AB12CD34")
	require.NoError(t, err)
	require.Greater(t, len(pdf), 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateCertificateSerial_Format(t *testing.T) {
	serial := GenerateCertificateSerial()
	assert.True(t, strings.HasPrefix(serial, "CERT-"))
	assert.Len(t, serial, len("CERT-")+8)
	assert.Equal(t, strings.ToUpper(serial), serial)
}

func TestGenerateTempPassword_Length(t *testing.T) {
	password := GenerateTempPassword()
	assert.Len(t, password, 12)
	assert.NotContains(t, password, "-")
	assert.NotEqual(t, password, GenerateTempPassword())
}
