package sources

import (
	"fmt"
	"maps"

	"github.com/BurntSushi/toml"
)

const (
	AppInfoName           = "Name"
	AppInfoCurrentCulture = "CurrentCulture"
)

// AppInfo is string-keyed metadata a script declares about itself. Every
// key is optional.
type AppInfo map[string]string

func (a AppInfo) Name() string {
	return a[AppInfoName]
}

func (a AppInfo) Culture() (string, bool) {
	v, ok := a[AppInfoCurrentCulture]
	return v, ok && v != ""
}

// Merge returns a copy of a with the entries of b added; b wins.
func (a AppInfo) Merge(b AppInfo) AppInfo {
	ret := make(AppInfo, len(a)+len(b))
	maps.Copy(ret, a)
	maps.Copy(ret, b)
	return ret
}

// ParseAppInfo reads a TOML manifest. Top-level scalar keys become entries;
// tables and arrays are rejected.
func ParseAppInfo(content []byte) (AppInfo, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(content), &raw); err != nil {
		return nil, fmt.Errorf("app info: %w", err)
	}
	ret := make(AppInfo, len(raw))
	for key, value := range raw {
		switch value := value.(type) {
		case string:
			ret[key] = value
		case int64, float64, bool:
			ret[key] = fmt.Sprint(value)
		default:
			return nil, fmt.Errorf("app info: key %s: unsupported value %T", key, value)
		}
	}
	return ret, nil
}
