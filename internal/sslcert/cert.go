package sslcert

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"os"
	"time"
)

const rsaKeyBits = 2048

// Generator представляет собой генератор SSL сертификатов.
// Содержит базовый шаблон сертификата.
type Generator struct {
	cert *x509.Certificate
}

// New создает генератор самоподписанных сертификатов для localhost сроком на год.
func New() (*Generator, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128)) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("generate serial number: %w", err)
	}
	cert := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Organization: []string{"bulkmeta"},
			CommonName:   "localhost",
		},
		DNSNames: []string{"localhost"},
		IPAddresses: []net.IP{
			net.IPv4(127, 0, 0, 1), //nolint:mnd
			net.IPv6loopback,
		},
		NotBefore: time.Now(),
		NotAfter:  time.Now().AddDate(1, 0, 0),
		ExtKeyUsage: []x509.ExtKeyUsage{
			x509.ExtKeyUsageServerAuth,
		},
		KeyUsage: x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
	}
	return &Generator{cert: cert}, nil
}

// Modifier модификатор для изменения параметров сертификата.
type Modifier struct {
	apply func(*x509.Certificate)
}

// Modify создает новый модификатор сертификата.
// Позволяет изменять параметры сертификата перед его генерацией.
func Modify(fn func(*x509.Certificate)) Modifier {
	return Modifier{apply: fn}
}

// Generate генерирует новую пару сертификат/приватный ключ в формате PEM.
func (c *Generator) Generate(modifiers ...Modifier) ([]byte, []byte, error) {
	tmpl := *c.cert
	cert := &tmpl

	for _, m := range modifiers {
		m.apply(cert)
	}

	privKey, errGenPrivKey := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if errGenPrivKey != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", errGenPrivKey)
	}
	certBytes, errGenCert := x509.CreateCertificate(rand.Reader, cert, cert, &privKey.PublicKey, privKey)
	if errGenCert != nil {
		return nil, nil, fmt.Errorf("generate certificate: %w", errGenCert)
	}

	certPEM, privPEM, errPEM := c.pemEncode(privKey, certBytes)
	if errPEM != nil {
		return nil, nil, fmt.Errorf("encode certificate and private key: %w", errPEM)
	}
	return certPEM, privPEM, nil
}

// CheckPemFiles проверяет PEM сертификата и ключа: наличие данных, тип блока и срок действия.
// Ошибки: ErrBlankPEM, ErrCertExpired, ErrCertNotValidYet.
func (c *Generator) CheckPemFiles(certSource io.Reader, keySource io.Reader) error {
	certBytes, errReadCert := io.ReadAll(certSource)
	if errReadCert != nil {
		return fmt.Errorf("read certificate: %w", errReadCert)
	}
	if len(certBytes) == 0 {
		return ErrBlankPEM
	}

	keyBytes, errReadKey := io.ReadAll(keySource)
	if errReadKey != nil {
		return fmt.Errorf("read private key: %w", errReadKey)
	}
	if len(keyBytes) == 0 {
		return ErrBlankPEM
	}

	certPemDecoded, errCertPemDecode := c.pemDecode(certBytes)
	if errCertPemDecode != nil {
		return fmt.Errorf("decode certificate: %w", errCertPemDecode)
	}
	if certPemDecoded.Type != "CERTIFICATE" {
		return errors.New("certificate type is not CERTIFICATE")
	}

	cert, errParseCert := x509.ParseCertificate(certPemDecoded.Bytes)

	if errParseCert != nil {
		return fmt.Errorf("parse certificate: %w", errParseCert)
	}

	if cert.NotBefore.After(time.Now()) {
		return ErrCertNotValidYet
	}
	if cert.NotAfter.Before(time.Now()) {
		return ErrCertExpired
	}
	return nil
}

// pemDecode декодирует PEM-данные.
func (c *Generator) pemDecode(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("pem decode: block is nil")
	}
	return block, nil
}

// pemEncode кодирует сертификат и приватный ключ в формат PEM.
func (c *Generator) pemEncode(privKey *rsa.PrivateKey, certBytes []byte) ([]byte, []byte, error) {
	var certPEM bytes.Buffer
	if errPemEncode := pem.Encode(&certPEM, &pem.Block{
		Type:  "CERTIFICATE",
		Bytes: certBytes,
	}); errPemEncode != nil {
		return nil, nil, fmt.Errorf("pem encode certificate: %w", errPemEncode)
	}

	var privKeyPEM bytes.Buffer
	if errPemEncode := pem.Encode(&privKeyPEM, &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privKey),
	}); errPemEncode != nil {
		return nil, nil, fmt.Errorf("pem encode RSA: %w", errPemEncode)
	}

	return certPEM.Bytes(), privKeyPEM.Bytes(), nil
}

// EnsurePair проверяет пару файлов сертификат/ключ и перевыпускает ее, если файлов нет,
// они пустые или сертификат истек.
//
// Параметры:
//   - certPath: путь к PEM сертификата
//   - keyPath: путь к PEM приватного ключа
//   - modifiers: модификаторы шаблона при перевыпуске
//
// Возвращает:
//   - bool: пара была перевыпущена
//   - error: ошибка чтения, генерации или записи
func (c *Generator) EnsurePair(certPath, keyPath string, modifiers ...Modifier) (bool, error) {
	checkErr := c.checkFiles(certPath, keyPath)
	if checkErr == nil {
		return false, nil
	}
	if !errors.Is(checkErr, ErrBlankPEM) && !errors.Is(checkErr, ErrCertExpired) &&
		!errors.Is(checkErr, os.ErrNotExist) {
		return false, checkErr
	}

	certPEM, keyPEM, err := c.Generate(modifiers...)
	if err != nil {
		return false, err
	}
	if err = os.WriteFile(certPath, certPEM, 0o600); err != nil { //nolint:mnd
		return false, fmt.Errorf("write certificate: %w", err)
	}
	if err = os.WriteFile(keyPath, keyPEM, 0o600); err != nil { //nolint:mnd
		return false, fmt.Errorf("write private key: %w", err)
	}
	return true, nil
}

func (c *Generator) checkFiles(certPath, keyPath string) error {
	certFile, err := os.Open(certPath)
	if err != nil {
		return fmt.Errorf("open certificate: %w", err)
	}
	defer certFile.Close()

	keyFile, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("open private key: %w", err)
	}
	defer keyFile.Close()

	return c.CheckPemFiles(certFile, keyFile)
}
