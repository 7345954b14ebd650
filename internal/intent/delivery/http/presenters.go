package http

import (
	"study-copilot/internal/intent"
)

// --- Request DTOs ---

type mentionReq struct {
	ID          string `json:"id" binding:"required"`
	DisplayName string `json:"display_name"`
}

type pageContextReq struct {
	CurrentView string `json:"current_view"`
	ViewItemID  string `json:"view_item_id"`
}

// classifyReq carries one classification request. Message is deliberately not
// required at binding time: an empty message is a valid request that resolves
// to the none intent, not a 400.
type classifyReq struct {
	Message     string          `json:"message"`
	Mentions    []mentionReq    `json:"mentions" binding:"omitempty,dive"`
	PageContext *pageContextReq `json:"page_context"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) toInput() intent.ClassifyInput {
	input := intent.ClassifyInput{Message: r.Message}
	for _, m := range r.Mentions {
		input.Mentions = append(input.Mentions, intent.Mention{
			ID:          m.ID,
			DisplayName: m.DisplayName,
		})
	}
	if r.PageContext != nil {
		input.Page = intent.PageContext{
			CurrentView: r.PageContext.CurrentView,
			ViewItemID:  r.PageContext.ViewItemID,
		}
	}
	return input
}

// --- Response DTOs ---

// classifyResp flattens the extracted capability arguments next to the intent
// fields, so callers read one flat object.
type classifyResp map[string]interface{}

func (h *handler) newClassifyResp(result intent.Result) classifyResp {
	resp := classifyResp{
		"intent":     result.Intent,
		"confidence": result.Confidence,
	}
	if result.Reasoning != "" {
		resp["reasoning"] = result.Reasoning
	}
	for name, value := range result.Parameters {
		// Intent fields win on collision; capability parameters never use
		// these names in practice.
		if _, taken := resp[name]; !taken {
			resp[name] = value
		}
	}
	return resp
}
