// Package agent implements the conversational financial advisor: a
// facilitator expert that delegates to specialist experts, one of which
// carries the calculation engine as callable tools.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library resolves a function call from the model into its response.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a callable tool: it declares itself to the model and
// executes the calls the model makes.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary builds a Library dispatching by function name. An unknown
// name is answered with an error response, never dropped.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %q", call.Name))
	}
}

// NewDeclaration collects the declarations of a set of functions.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

// errorResponse packs an error into a function response so the model can
// read it and recover.
func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// outputResponse packs a successful report into a function response.
func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}
