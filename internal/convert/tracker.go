package convert

import (
	"encoding/json"
	"fmt"
	"os"

	"wuwaconv/internal"
	"wuwaconv/internal/resource"
)

// TrackerConverter rewrites a wuwatracker JSON export into the normalized
// record shape: pool codes back to their labels, resource types into the
// target vocabulary, names through the injected resolver, timestamps into
// the canonical layout.
type TrackerConverter struct {
	path     string
	opts     Options
	resolver resource.Resolver
	env      internal.ExportEnvelope
}

func NewTrackerConverter(path string, opts Options, resolver resource.Resolver) *TrackerConverter {
	return &TrackerConverter{path: path, opts: opts, resolver: resolver, env: newEnvelope()}
}

func (c *TrackerConverter) Process() error {
	if err := checkReadable(c.path); err != nil {
		return err
	}

	blob, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var doc internal.TrackerDocument
	if err := json.Unmarshal(blob, &doc); err != nil {
		return fmt.Errorf("malformed tracker document: %w", err)
	}

	if doc.PlayerID != "" {
		c.env.Info.UID = doc.PlayerID
	}

	poolByCode := c.opts.poolLabelByCode()
	converted := 0
	for i, raw := range doc.Pulls {
		record, err := c.convertPull(raw, poolByCode)
		if err != nil {
			fmt.Printf("pull %d skipped: %v\n", i+1, err)
			continue
		}
		c.env.List = append(c.env.List, record)
		converted++
	}

	fmt.Printf("converted %d of %d pulls\n", converted, len(doc.Pulls))
	return nil
}

func (c *TrackerConverter) convertPull(raw json.RawMessage, poolByCode map[string]string) (internal.Record, error) {
	var pull internal.TrackerPull
	if err := json.Unmarshal(raw, &pull); err != nil {
		return internal.Record{}, err
	}

	code := string(pull.CardPoolType)
	if code == "" {
		code = "0"
	}
	poolLabel, ok := poolByCode[code]
	if !ok {
		poolLabel = code
	}

	resourceType := pull.ResourceType
	if mapped, ok := c.opts.ResourceTypes[resourceType]; ok {
		resourceType = mapped
	}

	quality := pull.QualityLevel
	if quality == 0 {
		quality = 3
	}
	count := pull.Count
	if count == 0 {
		count = 1
	}

	return internal.Record{
		CardPoolType: poolLabel,
		ResourceID:   pull.ResourceID,
		QualityLevel: quality,
		ResourceType: resourceType,
		Name:         c.resolveName(pull),
		Count:        count,
		Time:         NormalizeTime(pull.Time, c.opts.InputTimeLayouts, c.opts.OutputTimeLayout),
	}, nil
}

// resolveName substitutes the localized name when the resolver knows the
// resource. Misses on a recognized kind are worth a warning; anything else
// keeps the source name silently.
func (c *TrackerConverter) resolveName(pull internal.TrackerPull) string {
	kind := resource.Kind(pull.ResourceType)
	switch kind {
	case resource.KindWeapon, resource.KindCharacter:
		if name, ok := c.resolver.Resolve(kind, pull.ResourceID); ok {
			return name
		}
		fmt.Printf("no localized name for %s id=%d, keeping %q\n", pull.ResourceType, pull.ResourceID, pull.Name)
	}
	return pull.Name
}

func (c *TrackerConverter) Envelope() internal.ExportEnvelope {
	return c.env
}

func (c *TrackerConverter) UID() string {
	return c.env.Info.UID
}

func (c *TrackerConverter) RecordCount() int {
	return len(c.env.List)
}
