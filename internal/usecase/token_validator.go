package usecase

import (
	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/jwt"
)

// TokenValidator turns a verified bearer token into the calling principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Principal{}, jwt.ErrInvalidToken
	}
	return user.NewPrincipal(claims.UserID, role), nil
}
