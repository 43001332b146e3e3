package auth

import "encoding/base64"

// Base64Encode returns the standard base64 encoding of token.
func Base64Encode(token string) string {
	return base64.StdEncoding.EncodeToString([]byte(token))
}

// BasicAuthorization returns the Authorization header value for a storefront token.
func BasicAuthorization(token string) string {
	return "Basic " + Base64Encode(token)
}
