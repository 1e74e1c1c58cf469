package internal

import (
	"bytes"
	"encoding/json"
)

// Record is one converted pull in the normalized export schema.
type Record struct {
	CardPoolType string `json:"cardPoolType"`
	ResourceID   int    `json:"resourceId"`
	QualityLevel int    `json:"qualityLevel"`
	ResourceType string `json:"resourceType"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
	Time         string `json:"time"`
}

type ExportInfo struct {
	ExportTime       string `json:"export_time"`
	ExportApp        string `json:"export_app"`
	ExportAppVersion string `json:"export_app_version"`
	ExportTimestamp  int64  `json:"export_timestamp"`
	Version          string `json:"version"`
	UID              string `json:"uid"`
}

// ExportEnvelope is the top-level output document, one per input file.
// List keeps the input encounter order.
type ExportEnvelope struct {
	Info ExportInfo `json:"info"`
	List []Record   `json:"list"`
}

// TrackerDocument is the top level of a wuwatracker export. Pulls stay raw so
// one malformed pull can be skipped without failing the document.
type TrackerDocument struct {
	Version  string            `json:"version"`
	Date     string            `json:"date"`
	PlayerID string            `json:"playerId"`
	Pulls    []json.RawMessage `json:"pulls"`
}

type TrackerPull struct {
	CardPoolType PoolCode `json:"cardPoolType"`
	ResourceID   int      `json:"resourceId"`
	QualityLevel int      `json:"qualityLevel"`
	Name         string   `json:"name"`
	ResourceType string   `json:"resourceType"`
	Count        int      `json:"count"`
	Time         string   `json:"time"`
	IsSorted     *bool    `json:"isSorted,omitempty"`
	Group        *int     `json:"group,omitempty"`
}

// PoolCode tolerates both encodings seen in tracker exports: a bare number
// and its quoted string form.
type PoolCode string

func (p *PoolCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PoolCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PoolCode(n.String())
	return nil
}
