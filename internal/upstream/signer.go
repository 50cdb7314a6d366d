package upstream

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"
)

// Signer produces the Authorization header the ticketing API expects:
// "<scheme> <public key>:<signature>", where the signature is the base64
// of the hex text of HMAC-SHA512("<METHOD>\n<URL>").
type Signer struct {
	scheme    string
	publicKey string
	secret    []byte
}

// NewSigner builds a signer for the given credentials.
func NewSigner(scheme, publicKey, secret string) *Signer {
	return &Signer{scheme: scheme, publicKey: publicKey, secret: []byte(secret)}
}

// Signature signs method and rawURL exactly as written.
func (s *Signer) Signature(method, rawURL string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(strings.ToUpper(method) + "\n" + rawURL))
	digest := hex.EncodeToString(mac.Sum(nil))
	return base64.StdEncoding.EncodeToString([]byte(digest))
}

// Authorization returns the full header value for a request.
func (s *Signer) Authorization(method, rawURL string) string {
	return s.scheme + " " + s.publicKey + ":" + s.Signature(method, rawURL)
}

// Sign sets the auth headers on req. rawURL must be the string req was built from.
func (s *Signer) Sign(req *http.Request, rawURL string) {
	req.Header.Set("Authorization", s.Authorization(req.Method, rawURL))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Method", req.Method)
}
