package convert

const (
	appName       = "WutheringWavesUID"
	appVersion    = "2.0.1"
	exportVersion = "v2.0"
)

// Options carries the fixed vocabulary both converters work from. It is
// passed by value so tables can never bleed between files.
type Options struct {
	// RequiredColumns must all be present on a workbook sheet for it to be
	// processed.
	RequiredColumns []string

	// PoolTypes maps a pool label to its numeric code. The tracker
	// converter uses the reverse direction (code -> label).
	PoolTypes map[string]string

	// ResourceTypes maps source-locale type labels to the target
	// vocabulary.
	ResourceTypes map[string]string

	InputTimeLayouts []string
	OutputTimeLayout string
}

func DefaultOptions() Options {
	return Options{
		RequiredColumns: []string{"卡池", "资源ID", "星级", "类型", "名称", "数量", "时间"},
		PoolTypes: map[string]string{
			"角色精准调谐": "1",
			"武器精准调谐": "2",
			"角色常驻调谐": "3",
			"武器常驻调谐": "4",
			"新手调谐":   "5",
			"新手自选唤取": "6",
			"感恩定向唤取": "7",
		},
		ResourceTypes: map[string]string{
			"Weapon":    "武器",
			"Character": "角色",
		},
		InputTimeLayouts: []string{
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
		},
		OutputTimeLayout: "2006-01-02 15:04:05",
	}
}

func (o Options) poolLabelByCode() map[string]string {
	out := make(map[string]string, len(o.PoolTypes))
	for label, code := range o.PoolTypes {
		out[code] = label
	}
	return out
}
