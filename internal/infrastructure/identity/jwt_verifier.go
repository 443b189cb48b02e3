package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"webara_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
)

// metadataClaims are searched in order for a "role" entry.
var metadataClaims = []string{"public_metadata", "private_metadata", "unsafe_metadata"}

// JWTVerifier validates identity provider session tokens.
//
// HS256 tokens are checked against the shared secret, RS256 tokens against
// the PEM public key. Either or both may be configured.
type JWTVerifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
}

var _ interfaces.IIdentityVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret, publicKeyPEM, issuer string) (*JWTVerifier, error) {
	v := &JWTVerifier{issuer: strings.TrimSpace(issuer)}
	if secret != "" {
		v.secret = []byte(secret)
	}
	if pem := strings.TrimSpace(publicKeyPEM); pem != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(strings.ReplaceAll(pem, `\n`, "\n")))
		if err != nil {
			return nil, fmt.Errorf("parse identity public key: %w", err)
		}
		v.publicKey = key
	}
	if v.secret == nil && v.publicKey == nil {
		return nil, errors.New("identity verifier needs IDP_JWT_SECRET or IDP_JWT_PUBLIC_KEY")
	}
	return v, nil
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (interfaces.Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc)
	if err != nil || !token.Valid {
		return interfaces.Identity{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidIdentityToken, err)
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return interfaces.Identity{}, fmt.Errorf("%w: unexpected issuer", interfaces.ErrInvalidIdentityToken)
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return interfaces.Identity{}, fmt.Errorf("%w: missing sub", interfaces.ErrInvalidIdentityToken)
	}
	return interfaces.Identity{UserID: sub, Role: roleFromClaims(claims)}, nil
}

func (v *JWTVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if v.secret == nil {
			return nil, errors.New("hmac tokens are not accepted")
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA:
		if v.publicKey == nil {
			return nil, errors.New("rsa tokens are not accepted")
		}
		return v.publicKey, nil
	default:
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
}

func roleFromClaims(claims jwt.MapClaims) string {
	for _, key := range metadataClaims {
		if md, ok := claims[key].(map[string]interface{}); ok {
			if role, ok := md["role"].(string); ok && strings.TrimSpace(role) != "" {
				return strings.ToLower(strings.TrimSpace(role))
			}
		}
	}
	return ""
}
