package http

import (
	"context"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// stringClaim returns a non-empty string claim from the verified token.
func stringClaim(ctx context.Context, key string) (string, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}
	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func employeeIDFromContext(ctx context.Context) (string, bool) {
	return stringClaim(ctx, jwt.ClaimEmployeeID)
}

// supervisorRefFromContext resolves the acting supervisor from the user_id
// claim.
func supervisorRefFromContext(ctx context.Context) (string, bool) {
	return stringClaim(ctx, jwt.ClaimUserID)
}
