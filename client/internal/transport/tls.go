package transport

import (
	"crypto/x509"
	"fmt"
	"os"
)

// CertPoolFromPEM builds a trust anchor from a PEM bundle.
func CertPoolFromPEM(pem []byte) (*x509.CertPool, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in PEM bundle")
	}
	return pool, nil
}

// CertPoolFromFile reads a PEM bundle from path.
func CertPoolFromFile(path string) (*x509.CertPool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CA bundle: %w", err)
	}
	return CertPoolFromPEM(b)
}
