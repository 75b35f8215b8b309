package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWK_PEM_Ed25519(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwk := NewEd25519JWK("test-key-id", "sig", "EdDSA", publicKey)

	pemStr, err := jwk.PEM()
	require.NoError(t, err)
	require.NotEmpty(t, pemStr)

	require.True(t, strings.HasPrefix(pemStr, "-----BEGIN PUBLIC KEY-----"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(pemStr), "-----END PUBLIC KEY-----"))

	// Parse the PEM back to verify it round-trips
	block, _ := pem.Decode([]byte(pemStr))
	require.NotNil(t, block, "PEM block should be valid")
	require.Equal(t, "PUBLIC KEY", block.Type)

	parsedKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)

	ed25519PubKey, ok := parsedKey.(ed25519.PublicKey)
	require.True(t, ok, "Parsed key should be an Ed25519 public key")
	require.Equal(t, publicKey, ed25519PubKey)
}

func TestJWK_PEM_UnsupportedKeyType(t *testing.T) {
	jwk := JWK{
		Kty: "RSA",
		Kid: "test-key",
	}

	_, err := jwk.PEM()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported")
}

func TestJWK_PEM_InvalidBase64(t *testing.T) {
	jwk := JWK{
		Kty: "OKP",
		Crv: "Ed25519",
		Kid: "test-key",
		X:   "!!!invalid-base64!!!",
	}

	_, err := jwk.PEM()
	require.Error(t, err)
}

func TestKeySetAddPublicKeyPEM(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	keyset := NewKeySet()
	require.False(t, keyset.IsReady())

	require.NoError(t, keyset.AddPublicKeyPEM("idp", pemBytes))
	require.True(t, keyset.IsReady())

	got, err := keyset.Get("idp")
	require.NoError(t, err)
	require.Equal(t, pub, got)

	_, err = keyset.Get("other")
	require.ErrorIs(t, err, ErrNoKey)
}

func TestKeySetAddPublicKeyPEMRejectsGarbage(t *testing.T) {
	keyset := NewKeySet()

	err := keyset.AddPublicKeyPEM("idp", []byte("not-a-pem"))
	require.Error(t, err)
	require.False(t, keyset.IsReady())
}

func TestKeySetResetFromJWKS(t *testing.T) {
	pub1, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	pub2, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keyset := NewKeySet()
	require.NoError(t, keyset.AddJWK(NewEd25519JWK("old", "sig", "EdDSA", pub1)))

	// Reset replaces the whole set
	jwks := JWKS{Keys: []JWK{NewEd25519JWK("new", "sig", "EdDSA", pub2)}}
	require.NoError(t, keyset.ResetFromJWKS(jwks))

	_, err = keyset.Get("old")
	require.ErrorIs(t, err, ErrNoKey)

	got, err := keyset.Get("new")
	require.NoError(t, err)
	require.Equal(t, pub2, got)

	require.Len(t, keyset.PublicJWKS().Keys, 1)
}
