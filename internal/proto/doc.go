// Package proto holds the ChatService protobuf contract (chat.proto) and the
// code protoc generates from it.
package proto

//go:generate protoc --proto_path=. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative chat.proto
