package engine

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicVision adapts the Anthropic client to the VisionModel
// interface: ordered image blocks followed by one text block, single
// message, single call. The underlying client is safe for concurrent use.
type AnthropicVision struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicVision wraps an Anthropic client as a VisionModel.
func NewAnthropicVision(client anthropic.Client, model string, maxTokens int64) *AnthropicVision {
	return &AnthropicVision{client: client, model: anthropic.Model(model), maxTokens: maxTokens}
}

// Generate sends the image parts and trailing prompt, returning the
// concatenated text blocks of the response.
func (v *AnthropicVision) Generate(ctx context.Context, parts []ImagePart, prompt string) (string, error) {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(parts)+1)
	for _, p := range parts {
		blocks = append(blocks, anthropic.NewImageBlockBase64(p.MediaType, base64.StdEncoding.EncodeToString(p.Data)))
	}
	blocks = append(blocks, anthropic.NewTextBlock(prompt))

	msg, err := v.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     v.model,
		MaxTokens: v.maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
