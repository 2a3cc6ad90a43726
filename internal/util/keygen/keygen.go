package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// DefaultBits is the key size used for generated VM admin keys.
const DefaultBits = 4096

// KeyPair holds an RSA key pair in ready-to-use formats.
type KeyPair struct {
	// PrivateKey is the RSA private key in PEM-encoded PKCS#1 format.
	PrivateKey []byte
	// PublicKey is the public key in OpenSSH authorized_keys format.
	PublicKey []byte
}

// GenerateRSAKeyPair generates a new RSA key pair with the specified bit size.
func GenerateRSAKeyPair(bits int) (*KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA private key: %w", err)
	}

	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate RSA private key: %w", err)
	}

	privateKeyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	publicKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return &KeyPair{
		PrivateKey: privateKeyPEM,
		PublicKey:  ssh.MarshalAuthorizedKey(publicKey),
	}, nil
}

// AuthorizedKey returns the public key as a single authorized_keys line without the newline.
func (kp *KeyPair) AuthorizedKey() string {
	return strings.TrimSpace(string(kp.PublicKey))
}

// WriteFiles writes the private key to privatePath (0600) and the public key
// to privatePath + ".pub" (0644). Existing files are never overwritten.
func (kp *KeyPair) WriteFiles(privatePath string) (string, error) {
	publicPath := privatePath + ".pub"

	if err := os.MkdirAll(filepath.Dir(privatePath), 0o700); err != nil {
		return "", fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := writeNew(privatePath, kp.PrivateKey, 0o600); err != nil {
		return "", err
	}
	if err := writeNew(publicPath, kp.PublicKey, 0o644); err != nil {
		_ = os.Remove(privatePath)
		return "", err
	}
	return publicPath, nil
}

// PairExists reports whether both privatePath and its ".pub" companion exist.
func PairExists(privatePath string) bool {
	for _, path := range []string{privatePath, privatePath + ".pub"} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

func writeNew(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ReadPublicKey reads an authorized_keys formatted public key and returns it
// as a single line. The file must hold exactly one parsable key.
func ReadPublicKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}

	key, comment, _, rest, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse public key %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(rest))) > 0 {
		return "", fmt.Errorf("public key %s holds more than one key", path)
	}

	line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(key)))
	if comment != "" {
		line += " " + comment
	}
	return line, nil
}
