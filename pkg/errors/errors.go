package errors

import (
	"errors"
	"fmt"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = errors.New("неверный метод подписи токена")
	ErrInvalidToken         = errors.New("недопустимый токен")
	ErrTokenExpired         = errors.New("срок действия токена истёк")
	ErrTokenNotYetValid     = errors.New("токен ещё не активен")
	ErrTokenIsNotAccess     = errors.New("ожидался access-токен")

	// Авторизация
	ErrEmptyAuthHeader    = errors.New("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = errors.New("неверный формат заголовка авторизации")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrUnauthorized       = errors.New("неавторизован")
	ErrForbidden          = errors.New("доступ запрещён")

	// Политика доступа к сотрудникам.
	// Три разных ошибки, чтобы вызывающий код мог их различать.
	ErrRoleEscalation    = errors.New("супервайзер может создавать только сотрудников")
	ErrNotYourEmployee   = errors.New("недостаточно прав для изменения этого сотрудника")
	ErrSupervisorDelete  = errors.New("супервайзерам запрещено удалять сотрудников")
	ErrUnknownRole       = errors.New("недопустимое значение роли")
	ErrUnknownStatus     = errors.New("недопустимое значение статуса")
	ErrManagerNotFound   = errors.New("указанный руководитель не найден")

	// Контекст запроса
	ErrActorNotFoundInContext = errors.New("идентификатор пользователя не найден в контексте запроса")

	// Общие
	ErrNotFound     = errors.New("запись не найдена")
	ErrBadRequest   = errors.New("неверный запрос")
	ErrDuplicateKey = errors.New("сотрудник с таким email или табельным номером уже существует")
)

// HttpError несёт HTTP-код и сообщение для пользователя, внутреннюю ошибку и
// контекст для логов. Details попадает в тело ответа, Context — только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: 400, Message: message, Err: ErrBadRequest}
}
