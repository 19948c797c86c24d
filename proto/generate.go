// Package llmv1 contains the gRPC contract for the LLM sidecar.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
package llmv1
