package core

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"

	"github.com/pkg/errors"
)

// VerifySignature checks an RSA PKCS#1 v1.5 signature over the SHA-1
// digest of message. signature and keyText are base64 encoded; keyText
// may also be a full PEM block. Every malformed-input and crypto-level
// failure collapses to false, callers cannot distinguish a wrong
// signature from garbage input at this layer.
func VerifySignature(message string, signature string, keyText string) bool {
	sig, err := base64.StdEncoding.DecodeString(stripWhitespace(signature))
	if err != nil {
		return false
	}

	pub, err := ParseRSAPublicKey(keyText)
	if err != nil {
		return false
	}

	digest := sha1.Sum([]byte(message))

	return rsa.VerifyPKCS1v15(pub, crypto.SHA1, digest[:], sig) == nil
}

// ParseRSAPublicKey parses a base64 encoded DER public key, accepting
// both PKIX and PKCS#1 encodings. PEM armor is tolerated.
func ParseRSAPublicKey(keyText string) (*rsa.PublicKey, error) {
	var der []byte

	if strings.Contains(keyText, "-----BEGIN") {
		block, _ := pem.Decode([]byte(keyText))
		if block == nil {
			return nil, errors.New("failed to decode pem block")
		}
		der = block.Bytes
	} else {
		var err error
		der, err = base64.StdEncoding.DecodeString(stripWhitespace(keyText))
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode key")
		}
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err == nil {
		pub, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, errors.New("not an RSA public key")
		}
		return pub, nil
	}

	pub, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse key")
	}

	return pub, nil
}

// SignMessage produces a base64 encoded RSA PKCS#1 v1.5 signature over
// the SHA-1 digest of message. The server never signs on behalf of
// members; this is the counterpart of VerifySignature used by tests and
// tooling.
func SignMessage(message string, priv *rsa.PrivateKey) (string, error) {
	digest := sha1.Sum([]byte(message))

	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA1, digest[:])
	if err != nil {
		return "", errors.Wrap(err, "failed to sign message")
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// ExportPublicKey encodes an RSA public key the way clients upload
// theirs, as base64 of the PKIX DER bytes.
func ExportPublicKey(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal key")
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
