package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wuwaconv/internal"
)

func newEnvelope() internal.ExportEnvelope {
	now := time.Now()
	return internal.ExportEnvelope{
		Info: internal.ExportInfo{
			ExportTime:       now.Format("2006-01-02 15:04:05"),
			ExportApp:        appName,
			ExportAppVersion: appVersion,
			ExportTimestamp:  now.Unix(),
			Version:          exportVersion,
			UID:              "unknown",
		},
		List: []internal.Record{},
	}
}

// Save writes the envelope as export_<uid>.json under outputDir, creating
// the directory if needed. HTML escaping is off so CJK names and punctuation
// stay literal in the output.
func Save(env internal.ExportEnvelope, outputDir string) (string, error) {
	path := filepath.Join(outputDir, fmt.Sprintf("export_%s.json", env.Info.UID))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(env); err != nil {
		return "", err
	}
	return path, nil
}
