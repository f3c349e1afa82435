// Package agent exposes the analytics reports as callable tools and keeps a
// single conversation session against an external agent runtime.
package agent

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Agent holds one conversation session: an ordered message history that is
// replaced wholesale by the runtime's transcript after every question. It is
// an explicit session object, not process state, but it carries no internal
// locking: concurrent Ask calls on one Agent race on the history.
type Agent struct {
	runtime Runtime
	tools   []Tool
	history []openai.ChatCompletionMessage
}

func New(runtime Runtime, tools []Tool) *Agent {
	return &Agent{runtime: runtime, tools: tools}
}

// Ask appends the question as a user turn, delegates the full history with
// the registered tools to the runtime, adopts the returned transcript and
// returns the content of its final entry.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	a.history = append(a.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	transcript, err := a.runtime.Run(ctx, a.history, a.tools)
	if err != nil {
		return "", err
	}
	if len(transcript) == 0 {
		return "", errors.New("agent runtime returned an empty transcript")
	}

	a.history = transcript
	return transcript[len(transcript)-1].Content, nil
}

// Reset clears the conversation history.
func (a *Agent) Reset() {
	a.history = nil
}

// History returns a copy of the current transcript.
func (a *Agent) History() []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(a.history))
	copy(out, a.history)
	return out
}
