package convert

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"wuwaconv/internal"
	"wuwaconv/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	tmp := t.TempDir()
	return config.Config{
		DataDir:   filepath.Join(tmp, "data"),
		ExportDir: filepath.Join(tmp, "export"),
		// Unreachable on purpose: batch runs must survive a dead lookup API.
		APIBaseURL:   "http://127.0.0.1:1",
		APILocale:    "zh-Hans",
		APITimeoutMs: 1000,
	}
}

func TestRunCreatesDirectoriesOnFirstRun(t *testing.T) {
	cfg := testConfig(t)
	runner := NewRunner(cfg)
	if err := runner.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{cfg.DataDir, cfg.ExportDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunConvertsTrackerFileWithDeadAPI(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	doc := `{
		"playerId": "12345",
		"pulls": [
			{"cardPoolType": "1", "resourceId": 1, "qualityLevel": 5, "name": "TestWeapon", "resourceType": "Weapon", "count": 1, "time": "2024-01-01T12:00:00Z"}
		]
	}`
	if err := os.WriteFile(filepath.Join(cfg.DataDir, "pulls.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(cfg)
	if err := runner.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	blob, err := os.ReadFile(filepath.Join(cfg.ExportDir, "export_12345.json"))
	if err != nil {
		t.Fatal(err)
	}
	var env internal.ExportEnvelope
	if err := json.Unmarshal(blob, &env); err != nil {
		t.Fatal(err)
	}
	if len(env.List) != 1 {
		t.Fatalf("list=%+v", env.List)
	}
	// Degraded run: everything converts, the name just stays untranslated.
	rec := env.List[0]
	if rec.Name != "TestWeapon" {
		t.Fatalf("name=%s", rec.Name)
	}
	if rec.CardPoolType != "角色精准调谐" || rec.ResourceType != "武器" || rec.Time != "2024-01-01 12:00:00" {
		t.Fatalf("record=%+v", rec)
	}
}

func TestRunContinuesPastBadFile(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.DataDir, "a_broken.json"), []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.DataDir, "b_good.json"), []byte(`{"playerId": "555", "pulls": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(cfg)
	if err := runner.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(cfg.ExportDir, "export_555.json")); err != nil {
		t.Fatal(err)
	}
}
