package analyzer

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
)

// strictJSONReminder is appended on the schema-failure re-prompt.
const strictJSONReminder = "Your previous reply was not valid JSON. Respond with ONLY a single valid JSON object matching the requested schema. No prose, no markdown fences, no commentary."

// systemAndUser builds the two-message conversation every unit sends.
func systemAndUser(system, user string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}

// callMeta carries the accounting for one model call.
type callMeta struct {
	ModelID string
	Usage   llm.Usage
	CostUSD float64
}

// tag attaches the call accounting to a post-call failure so the tokens the
// attempt consumed are still priced into the session.
func (m callMeta) tag(aerr *Error) *Error {
	aerr.ModelID = m.ModelID
	aerr.Usage = m.Usage
	aerr.CostUSD = m.CostUSD
	return aerr
}

// callJSON resolves the task's model, issues one JSON-mode completion, and
// parses the reply into a gjson document. All analyzer units call through
// here so routing, pricing, and strict re-prompting behave identically.
func (d *Deps) callJSON(ctx context.Context, task string, messages []llm.Message, temperature float32, maxTokens int, attempt Attempt) (gjson.Result, callMeta, *Error) {
	res, err := d.Router.Resolve(task, "")
	if err != nil {
		return gjson.Result{}, callMeta{}, &Error{Class: ClassConfig, Err: err}
	}

	if attempt.StrictJSON {
		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: strictJSONReminder})
	}

	resp, err := d.LLM.Complete(ctx, &llm.Request{
		Model:       res.ModelID,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSONOnly:    true,
	})
	if err != nil {
		aerr := fromLLMError(err)
		aerr.Err = fmt.Errorf("task %s (model %s): %w", task, res.ModelID, aerr.Err)
		return gjson.Result{}, callMeta{ModelID: res.ModelID}, aerr
	}

	meta := callMeta{
		ModelID: res.ModelID,
		Usage:   resp.Usage,
		CostUSD: d.Router.Price(res.ModelID, resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
	}

	doc, aerr := parseDocument(resp.Content)
	if aerr != nil {
		aerr.ModelID = meta.ModelID
		aerr.Usage = meta.Usage
		aerr.CostUSD = meta.CostUSD
		return gjson.Result{}, meta, aerr
	}
	return doc, meta, nil
}
