package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// AnalysisRequest é o corpo aceito pelo proxy de análise.
// Os campos são mantidos crus para serem repassados ao prompt como vieram.
type AnalysisRequest struct {
	Ad         json.RawMessage `json:"ad"`
	Metrics    json.RawMessage `json:"metrics"`
	Thresholds json.RawMessage `json:"thresholds"`
	Bucket     json.RawMessage `json:"bucket"`
}

// MissingFields lista os campos ausentes, nulos ou vazios do pedido
func (r AnalysisRequest) MissingFields() []string {
	missing := make([]string, 0, 4)
	if isEmptyJSON(r.Ad) {
		missing = append(missing, "ad")
	}
	if isEmptyJSON(r.Metrics) {
		missing = append(missing, "metrics")
	}
	if isEmptyJSON(r.Thresholds) {
		missing = append(missing, "thresholds")
	}
	if isEmptyJSON(r.Bucket) {
		missing = append(missing, "bucket")
	}
	return missing
}

// BucketLabel retorna o bucket como texto para o prompt
func (r AnalysisRequest) BucketLabel() string {
	var label string
	if err := json.Unmarshal(r.Bucket, &label); err == nil {
		return label
	}
	return string(bytes.TrimSpace(r.Bucket))
}

// MetricsCount retorna o número de linhas enviadas, ou -1 se metrics não for uma lista
func (r AnalysisRequest) MetricsCount() int {
	var rows []json.RawMessage
	if err := json.Unmarshal(r.Metrics, &rows); err != nil {
		return -1
	}
	return len(rows)
}

func isEmptyJSON(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

// AnalysisReport é o bloco JSON que o modelo deve devolver ao final do texto
type AnalysisReport struct {
	Summary     string   `json:"summary"`
	Bullets     []string `json:"bullets"`
	ChartNotes  []string `json:"chartNotes"`
	Breaches    []string `json:"breaches"`
	NextActions []string `json:"nextActions"`
}

func (r *AnalysisReport) empty() bool {
	return r.Summary == "" && len(r.Bullets) == 0 && len(r.ChartNotes) == 0 &&
		len(r.Breaches) == 0 && len(r.NextActions) == 0
}

// AnalysisResult fica apenas em memória no controller
type AnalysisResult struct {
	ID        string          `json:"id"`
	AdID      string          `json:"ad_id"`
	Bucket    TimeBucket      `json:"bucket"`
	Content   string          `json:"content"`
	Report    *AnalysisReport `json:"report,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ParseAnalysisReport extrai o último bloco JSON do texto devolvido pelo modelo.
// Retorna nil quando não há bloco válido.
func ParseAnalysisReport(content string) *AnalysisReport {
	if matches := fencedJSON.FindAllStringSubmatch(content, -1); len(matches) > 0 {
		for i := len(matches) - 1; i >= 0; i-- {
			if report := decodeReport(matches[i][1]); report != nil {
				return report
			}
		}
	}

	var found *AnalysisReport
	for i := strings.IndexByte(content, '{'); i >= 0; {
		if report := decodeReport(content[i:]); report != nil {
			found = report
		}

		next := strings.IndexByte(content[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}

	return found
}

func decodeReport(s string) *AnalysisReport {
	report := &AnalysisReport{}
	if err := json.NewDecoder(strings.NewReader(s)).Decode(report); err != nil {
		return nil
	}
	if report.empty() {
		return nil
	}
	return report
}
