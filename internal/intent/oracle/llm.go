// Package oracle adapts the multi-provider LLM stack to the classifier's
// structured-selection contract.
package oracle

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"study-copilot/internal/intent"
	"study-copilot/pkg/llmprovider"
	"study-copilot/pkg/log"
)

const (
	defaultTimeout = 20 * time.Second

	// Selection is near-deterministic work; keep sampling cold.
	temperature = 0.1
)

const systemInstruction = `You are a capability selector for a study assistant.
Read the user's request and the context facts, then select exactly one of the
provided functions when the request clearly asks for one of those actions.
Extract arguments only from what the user actually wrote. If no function
matches, respond with a short plain-text sentence and select nothing.`

// LLM issues one structured selection call per classification through the
// provider manager. The manager's fallback chain may try another provider on
// transport failure; the same provider is never re-asked.
type LLM struct {
	l       log.Logger
	manager *llmprovider.Manager
	timeout time.Duration
}

var _ intent.Oracle = (*LLM)(nil)

func NewLLM(l log.Logger, manager *llmprovider.Manager, timeout time.Duration) *LLM {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LLM{l: l, manager: manager, timeout: timeout}
}

func (o *LLM) Select(ctx context.Context, prompt string, tools []llmprovider.Tool) (intent.OracleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemInstruction}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Tools:       tools,
		Temperature: temperature,
	}

	resp, err := o.manager.GenerateContent(ctx, req)
	if err != nil {
		return intent.OracleResult{}, err
	}

	result := interpret(resp.Content.Parts)
	if resp.Usage != nil {
		result.Cost = int64(resp.Usage.TotalTokens)
	}

	o.l.Debugf(ctx, "oracle.Select: provider=%s model=%s kind=%d cost=%d",
		resp.ProviderName, resp.ModelName, result.Kind, result.Cost)
	return result, nil
}

// interpret maps the raw response parts onto the three selection shapes:
// a usable function call, an attempted-but-broken selection, or no selection.
func interpret(parts []llmprovider.Part) intent.OracleResult {
	var text strings.Builder

	for _, p := range parts {
		if p.FunctionCall != nil {
			if p.FunctionCall.Name == "" {
				return intent.OracleResult{Kind: intent.OracleMalformed}
			}
			return intent.OracleResult{
				Kind: intent.OracleSelection,
				Selection: &intent.Selection{
					CapabilityID: p.FunctionCall.Name,
					Args:         p.FunctionCall.Args,
				},
			}
		}
		text.WriteString(p.Text)
	}

	// Some models emit the selection as a JSON blob in plain text instead of
	// a function call. A blob that parses with a name is still a selection;
	// a blob that looks structured but does not parse is a malformed attempt.
	raw := stripCodeFence(strings.TrimSpace(text.String()))
	if !strings.HasPrefix(raw, "{") {
		return intent.OracleResult{Kind: intent.OracleNone}
	}

	if sel, ok := parseTextSelection(raw); ok {
		return intent.OracleResult{Kind: intent.OracleSelection, Selection: sel}
	}
	return intent.OracleResult{Kind: intent.OracleMalformed}
}

type textSelection struct {
	Capability string                 `json:"capability"`
	Name       string                 `json:"name"`
	Tool       string                 `json:"tool"`
	Args       map[string]interface{} `json:"args"`
	Arguments  map[string]interface{} `json:"arguments"`
	Parameters map[string]interface{} `json:"parameters"`
}

func parseTextSelection(raw string) (*intent.Selection, bool) {
	var ts textSelection
	if err := json.Unmarshal([]byte(raw), &ts); err != nil {
		return nil, false
	}

	name := ts.Capability
	if name == "" {
		name = ts.Name
	}
	if name == "" {
		name = ts.Tool
	}
	if name == "" {
		return nil, false
	}

	args := ts.Args
	if args == nil {
		args = ts.Arguments
	}
	if args == nil {
		args = ts.Parameters
	}

	return &intent.Selection{CapabilityID: name, Args: args}, true
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
