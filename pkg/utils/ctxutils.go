package utils

import (
	"context"

	"employee-portal/internal/authz"
	"employee-portal/internal/entities"
	"employee-portal/pkg/contextkeys"
	apperrors "employee-portal/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrActorNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (entities.Role, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(entities.Role)
	if !ok {
		return "", apperrors.ErrActorNotFoundInContext
	}
	return role, nil
}

// GetActorFromCtx собирает актора из значений, положенных auth-middleware.
func GetActorFromCtx(ctx context.Context) (authz.Actor, error) {
	userID, err := GetUserIDFromCtx(ctx)
	if err != nil {
		return authz.Actor{}, err
	}
	role, err := GetUserRoleFromCtx(ctx)
	if err != nil {
		return authz.Actor{}, err
	}
	return authz.Actor{ID: userID, Role: role}, nil
}
