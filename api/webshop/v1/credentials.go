// Package webshopv1 содержит gRPC API магазина, сгенерированное из webshop.proto,
// и учётные данные, с которыми клиенты вызывают сервисы.
package webshopv1

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative api/webshop/v1/webshop.proto

import (
	"context"
	"encoding/base64"

	"google.golang.org/grpc/credentials"
)

// AuthorizationHeader — ключ метаданных с учётными данными вызывающего.
const AuthorizationHeader = "authorization"

// IdempotencyKeyHeader — ключ метаданных для безопасного повтора изменяющих вызовов.
const IdempotencyKeyHeader = "idempotency-key"

// BasicCredentials передаёт email и пароль в каждом вызове заголовком Basic.
type BasicCredentials struct {
	Email    string
	Password string
	// Secure требует TLS; для локальных и тестовых соединений может быть false.
	Secure bool
}

// GetRequestMetadata реализует credentials.PerRPCCredentials.
func (c BasicCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	token := base64.StdEncoding.EncodeToString([]byte(c.Email + ":" + c.Password))
	return map[string]string{AuthorizationHeader: "Basic " + token}, nil
}

// RequireTransportSecurity реализует credentials.PerRPCCredentials.
func (c BasicCredentials) RequireTransportSecurity() bool {
	return c.Secure
}

var _ credentials.PerRPCCredentials = BasicCredentials{}
