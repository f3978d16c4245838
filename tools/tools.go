//go:build tools

// Пакет tools фиксирует генераторы, которыми собран api/webshop/v1.
// Генераторы protoc ставятся вручную той же версии, что записана в шапке
// сгенерированных файлов:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.5.1
//	go generate ./api/...
//
// поэтому импорты-заглушки не нужны.
package tools
