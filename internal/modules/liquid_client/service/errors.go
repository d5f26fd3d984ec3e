package service

import "fmt"

// AuthError — токен не получен, либо исчерпан бюджет повторов
// после auth-challenge. Фатальна для вызова, состояние клиента не портит.
type AuthError struct {
	Reason  string
	Payload []byte
}

func (e *AuthError) Error() string { return e.Reason }

// ResponseError — ответ сервера не соответствует ожидаемой форме операции.
// Несёт сырой ответ для диагностики.
type ResponseError struct {
	Message string
	Payload []byte
}

func (e *ResponseError) Error() string { return e.Message }

func responseErrorf(payload []byte, format string, args ...interface{}) *ResponseError {
	return &ResponseError{Message: fmt.Sprintf(format, args...), Payload: payload}
}

// ValidationError — аргументы вызова не прошли локальную проверку,
// сетевой запрос не выполнялся.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
