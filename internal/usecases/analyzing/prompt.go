package analyzing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

const systemPrompt = "You are a pragmatic performance marketing analyst. Be concise, numeric, action-oriented."

const userPromptTemplate = `
Context:
- Time bucket: %s
- Thresholds: %s
- Recent metrics (newest first, up to %d): %s

Tasks:
1) Identify metric breaches and since when.
2) Explain likely drivers (e.g., CPM spikes, creative fatigue).
3) Recommend next steps with expected impact.
4) Output JSON with: { "summary": string, "bullets": string[], "chartNotes": string[], "breaches": string[], "nextActions": string[] }.
Return plain text THEN a JSON block.
`

// BuildUserPrompt embute bucket, thresholds e métricas como JSON compacto
func BuildUserPrompt(req domain.AnalysisRequest) string {
	return fmt.Sprintf(userPromptTemplate,
		req.BucketLabel(),
		compactJSON(req.Thresholds),
		MaxMetricRows,
		compactJSON(req.Metrics),
	)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}
