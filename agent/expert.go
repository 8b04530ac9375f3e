package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Expert represents a chat with a business expert.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library
	chat        *genai.Chat
}

// Start creates the expert's chat session on the client.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("could not start expert %q: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert and resolves any function calls it makes
// until a text response comes back.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		log.Debug().Str("expert", e.Name).Str("function", part0.FunctionCall.Name).
			Interface("args", part0.FunctionCall.Args).Msg("function call")

		// Errors travel inside the response so the model can recover.
		fresp := e.Library(ctx, part0.FunctionCall)

		// Feed the function result back until a real answer comes out.
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

// Declaration returns the function declaration to ask this expert, so a
// facilitator can treat the whole expert as one callable tool.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call asks this expert the question carried by a function call.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, ok := args["question"].(string)
	if !ok {
		return errorResponse(id, e.Name, fmt.Errorf("argument 'question' is not a string but %T", args["question"]))
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return errorResponse(id, e.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}

	answer := response.Parts[0].Text
	log.Debug().Str("expert", e.Name).Str("question", question).Str("answer", answer).Msg("expert consulted")
	return outputResponse(id, e.Name, answer)
}
