package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
)

// managerPrefix marks walmart IDs that map to the admin role.
const managerPrefix = "manager"

// SSOClaims is the payload of a mock-SSO assertion token.
type SSOClaims struct {
	WalmartID string `json:"walmart_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// verifyAssertion parses and validates an HS256 SSO assertion, returning the
// identity claims it carries.
func verifyAssertion(assertion string, cfg config.SSOConfig) (*SSOClaims, error) {
	claims := &SSOClaims{}
	token, err := jwt.ParseWithClaims(assertion, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid assertion")
	}
	if strings.TrimSpace(claims.WalmartID) == "" {
		return nil, fmt.Errorf("assertion is missing walmart_id")
	}
	return claims, nil
}

func isManagerID(walmartID string) bool {
	return strings.HasPrefix(strings.ToLower(walmartID), managerPrefix)
}
