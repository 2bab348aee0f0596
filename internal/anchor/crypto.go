package anchor

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Crypto anchors the cryptography stack: a fixed-size hash, an HMAC, an
// asymmetric key pair with its raw private material exported, a bcrypt
// round at minimum cost, and one signed token.
type Crypto struct{}

func (Crypto) Name() string { return "crypto" }

func (c Crypto) Exercise(ctx context.Context) Result {
	res := Result{Name: c.Name()}

	var buf [64]byte
	for i := range buf {
		buf[i] = byte(i)
	}

	call(&res, func() error {
		sum := sha256.Sum256(buf[:])
		keep(hex.EncodeToString(sum[:]))
		return nil
	})

	call(&res, func() error {
		mac := hmac.New(sha256.New, buf[:32])
		mac.Write(buf[32:])
		keepBytes(mac.Sum(nil))
		return nil
	})

	call(&res, func() error {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return err
		}
		keepBytes(priv.Seed())
		keepBytes(pub)
		der, err := x509.MarshalPKCS8PrivateKey(priv)
		if err != nil {
			return err
		}
		keepBytes(der)
		return nil
	})

	// MinCost keeps the pass fast; the cost parameter is irrelevant to
	// what the call anchors.
	call(&res, func() error {
		hash, err := bcrypt.GenerateFromPassword(buf[:16], bcrypt.MinCost)
		if err != nil {
			return err
		}
		return bcrypt.CompareHashAndPassword(hash, buf[:16])
	})

	call(&res, func() error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "ballast",
			"iat": 0,
		})
		signed, err := token.SignedString(buf[:32])
		keep(signed)
		return err
	})

	return res
}
