package middleware

import (
	"context"
	"strings"

	"employee-portal/internal/entities"
	"employee-portal/pkg/contextkeys"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/service"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth проверяет Bearer-токен и кладёт идентификатор и роль актора в контекст
// запроса. Роль из токена валидируется как закрытый перечень — токен с
// неизвестной ролью отклоняется, а не трактуется как Employee.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh-токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		role, err := entities.ParseRole(claims.Role)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Неизвестная роль в токене", zap.String("role", claims.Role))
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRoles — capability-gate поверх Auth: пропускает только актора с одной
// из перечисленных ролей. Сотрудники (Employee) отсекаются здесь и до движка
// политики не доходят.
func (m *AuthMiddleware) RequireRoles(roles ...entities.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetUserRoleFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			m.logger.Warn("RequireRoles: Недостаточно прав",
				zap.String("role", role.String()),
				zap.String("uri", c.Request().RequestURI),
			)
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
	}
}
