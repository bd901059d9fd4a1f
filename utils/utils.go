package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTempPassword returns a random password for bulk-admitted accounts
func GenerateTempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// GenerateCertificateSerial returns a unique serial for an issued certificate
func GenerateCertificateSerial() string {
	return "CERT-" + strings.ToUpper(uuid.NewString()[:8])
}
