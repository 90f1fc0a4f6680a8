package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// ErrAccountNotFound - аккаунт с таким email или id не существует
var ErrAccountNotFound = New(
	CodeNotFound,
	"auth",
	"No account found with this email address",
	http.StatusNotFound,
)

// ErrEmailAlreadyExists - регистрация на занятый email (регистронезависимо)
var ErrEmailAlreadyExists = New(
	CodeConflict,
	"auth",
	"User with this email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials - пароль не совпал при логине
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid password",
	http.StatusUnauthorized,
)

// ErrAccountUnverified - аккаунт не подтвержден.
// В мок-режиме все аккаунты авто-верифицируются, но ошибка смоделирована.
var ErrAccountUnverified = New(
	CodeUnverified,
	"auth",
	"Please verify your email before logging in",
	http.StatusForbidden,
)

// ErrInvalidResetToken - токен сброса пароля неизвестен или уже использован
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired reset token",
	http.StatusBadRequest,
)

// ErrResetTokenExpired - токен сброса пароля просрочен (и удален)
var ErrResetTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Reset token has expired",
	http.StatusBadRequest,
)

// ErrProfileNotFound - у аккаунта еще нет контейнера профиля
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// ErrEducationNotFound - запись об образовании с таким id отсутствует
var ErrEducationNotFound = New(
	CodeNotFound,
	"profile",
	"Education record not found",
	http.StatusNotFound,
)

// ErrJobNotFound - вакансия с таким id отсутствует
var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

// ErrApplicationNotFound - отклик с таким id отсутствует
var ErrApplicationNotFound = New(
	CodeNotFound,
	"jobs",
	"Application not found",
	http.StatusNotFound,
)

// ErrTemplateNotFound - шаблон резюме вне статического каталога
var ErrTemplateNotFound = New(
	CodeNotFound,
	"profile",
	"Resume template not found",
	http.StatusNotFound,
)
