package qwen

import "testing"

func TestTransformResponse(t *testing.T) {
	t.Run("valid tool call", func(t *testing.T) {
		resp := transformResponse(&openAIResponse{
			Choices: []openAIChoice{{
				Message: openAIMessage{
					Role: "assistant",
					ToolCalls: []openAIToolCall{{
						Function: openAIFunctionCall{
							Name:      "flashcard",
							Arguments: `{"note_id": "42", "count": 20}`,
						},
					}},
				},
			}},
			Usage: openAIUsage{PromptTokens: 80, CompletionTokens: 10, TotalTokens: 90},
		})

		if len(resp.Content.Parts) != 1 {
			t.Fatalf("expected 1 part, got %d", len(resp.Content.Parts))
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc == nil || fc.Name != "flashcard" {
			t.Fatalf("expected flashcard call, got %+v", fc)
		}
		if fc.Args["note_id"] != "42" {
			t.Errorf("note_id = %v, want 42", fc.Args["note_id"])
		}
		if resp.Usage.TotalTokens != 90 {
			t.Errorf("total tokens = %d, want 90", resp.Usage.TotalTokens)
		}
	})

	t.Run("garbled arguments become a nameless call", func(t *testing.T) {
		resp := transformResponse(&openAIResponse{
			Choices: []openAIChoice{{
				Message: openAIMessage{
					Role: "assistant",
					ToolCalls: []openAIToolCall{{
						Function: openAIFunctionCall{
							Name:      "flashcard",
							Arguments: `{"note_id": `,
						},
					}},
				},
			}},
		})

		if len(resp.Content.Parts) != 1 {
			t.Fatalf("expected 1 part, got %d", len(resp.Content.Parts))
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc == nil {
			t.Fatal("expected a function call part")
		}
		if fc.Name != "" || fc.Args != nil {
			t.Errorf("expected nameless call for garbled arguments, got %+v", fc)
		}
	})

	t.Run("plain text response", func(t *testing.T) {
		resp := transformResponse(&openAIResponse{
			Choices: []openAIChoice{{
				Message: openAIMessage{Role: "assistant", Content: "I cannot help with that."},
			}},
		})

		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text == "" {
			t.Fatalf("expected a text part, got %+v", resp.Content.Parts)
		}
	})
}
