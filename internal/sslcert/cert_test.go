package sslcert

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CertSuite struct {
	suite.Suite
	gen *Generator
}

func TestCertSuite(t *testing.T) {
	suite.Run(t, new(CertSuite))
}

func (s *CertSuite) SetupTest() {
	gen, err := New()
	s.Require().NoError(err)
	s.gen = gen
}

func (s *CertSuite) TestGenerate() {
	certPEM, keyPEM, err := s.gen.Generate()
	s.Require().NoError(err)

	_, err = tls.X509KeyPair(certPEM, keyPEM)
	s.Require().NoError(err)
	s.Require().NoError(s.gen.CheckPemFiles(bytes.NewReader(certPEM), bytes.NewReader(keyPEM)))
}

func (s *CertSuite) TestCheckPEMFiles() {
	s.Run("blank pem", func() {
		err := s.gen.CheckPemFiles(new(bytes.Buffer), new(bytes.Buffer))
		s.Require().ErrorIs(err, ErrBlankPEM)
	})

	s.Run("expired", func() {
		certPEM, keyPEM, err := s.gen.Generate(expired())
		s.Require().NoError(err)

		err = s.gen.CheckPemFiles(bytes.NewReader(certPEM), bytes.NewReader(keyPEM))
		s.Require().ErrorIs(err, ErrCertExpired)
	})
}

func (s *CertSuite) TestEnsurePair() {
	dir := s.T().TempDir()
	certPath, keyPath := filepath.Join(dir, "cert.pem"), filepath.Join(dir, "key.pem")

	created, err := s.gen.EnsurePair(certPath, keyPath)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.gen.EnsurePair(certPath, keyPath)
	s.Require().NoError(err)
	s.False(created)

	certPEM, keyPEM, err := s.gen.Generate(expired())
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(certPath, certPEM, 0o600))
	s.Require().NoError(os.WriteFile(keyPath, keyPEM, 0o600))

	created, err = s.gen.EnsurePair(certPath, keyPath)
	s.Require().NoError(err)
	s.True(created)
}

func expired() Modifier {
	return Modify(func(c *x509.Certificate) {
		c.NotBefore = time.Now().AddDate(-2, 0, 0)
		c.NotAfter = time.Now().AddDate(-1, 0, 0)
	})
}
