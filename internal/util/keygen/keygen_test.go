package keygen

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestGenerateRSAKeyPair_InvalidBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
	}{
		{"zero bits", 0},
		{"negative bits", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := GenerateRSAKeyPair(tt.bits)
			assert.Error(t, err)
		})
	}
}

func TestKeyPair_Formats(t *testing.T) {
	t.Parallel()
	keyPair, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	block, rest := pem.Decode(keyPair.PrivateKey)
	require.NotNil(t, block)
	assert.Empty(t, bytes.TrimSpace(rest))
	assert.Equal(t, "RSA PRIVATE KEY", block.Type)

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(keyPair.PublicKey), "ssh-rsa "))
	assert.True(t, strings.HasSuffix(string(keyPair.PublicKey), "\n"))

	parsed, _, _, _, err := ssh.ParseAuthorizedKey(keyPair.PublicKey)
	require.NoError(t, err)
	expected, err := ssh.NewPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, expected.Marshal(), parsed.Marshal(), "public key must correspond to private key")

	assert.Equal(t, strings.TrimSpace(string(keyPair.PublicKey)), keyPair.AuthorizedKey())
}

func TestGenerateRSAKeyPair_Uniqueness(t *testing.T) {
	t.Parallel()
	keyPair1, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)
	keyPair2, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	assert.NotEqual(t, keyPair1.PrivateKey, keyPair2.PrivateKey)
	assert.NotEqual(t, keyPair1.PublicKey, keyPair2.PublicKey)
}

func TestKeyPair_WriteFiles(t *testing.T) {
	t.Parallel()
	keyPair, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	privatePath := filepath.Join(t.TempDir(), "keys", "vm1_rsa")
	publicPath, err := keyPair.WriteFiles(privatePath)
	require.NoError(t, err)
	assert.Equal(t, privatePath+".pub", publicPath)

	info, err := os.Stat(privatePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := ReadPublicKey(publicPath)
	require.NoError(t, err)
	assert.Equal(t, keyPair.AuthorizedKey(), got)

	_, err = keyPair.WriteFiles(privatePath)
	assert.Error(t, err, "existing keys must not be overwritten")
}

func TestKeyPair_WriteFiles_RemovesPrivateKeyWhenPublicFails(t *testing.T) {
	t.Parallel()
	keyPair, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	privatePath := filepath.Join(t.TempDir(), "vm1_rsa")
	require.NoError(t, os.WriteFile(privatePath+".pub", []byte("stale"), 0o644))

	_, err = keyPair.WriteFiles(privatePath)
	require.Error(t, err)

	_, statErr := os.Stat(privatePath)
	assert.True(t, os.IsNotExist(statErr), "private key must not outlive a failed public key write")
	data, err := os.ReadFile(privatePath + ".pub")
	require.NoError(t, err)
	assert.Equal(t, "stale", string(data))
}

func TestPairExists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privatePath := filepath.Join(dir, "vm1_rsa")

	assert.False(t, PairExists(privatePath))

	require.NoError(t, os.WriteFile(privatePath, []byte("key"), 0o600))
	assert.False(t, PairExists(privatePath), "public half is missing")

	require.NoError(t, os.WriteFile(privatePath+".pub", []byte("pub"), 0o644))
	assert.True(t, PairExists(privatePath))
}

func TestReadPublicKey_Invalid(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := ReadPublicKey(filepath.Join(dir, "missing.pub"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.pub")
	require.NoError(t, os.WriteFile(bad, []byte("not a key\n"), 0o644))
	_, err = ReadPublicKey(bad)
	assert.Error(t, err)
}

func TestReadPublicKey_KeepsComment(t *testing.T) {
	t.Parallel()
	keyPair, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.pub")
	line := keyPair.AuthorizedKey() + " me@laptop\n"
	require.NoError(t, os.WriteFile(path, []byte(line), 0o644))

	got, err := ReadPublicKey(path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(line), got)
}
