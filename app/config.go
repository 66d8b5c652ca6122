package app

import (
	"github.com/spf13/cast"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
)

// FlagAjoMetrics is the app.toml key that enables the pool activity recorder
const FlagAjoMetrics = "ajo.metrics"

// AjoConfig is the [ajo] section of app.toml
type AjoConfig struct {
	Metrics bool `mapstructure:"metrics"`
}

// DefaultAjoConfig returns the [ajo] defaults
func DefaultAjoConfig() AjoConfig {
	return AjoConfig{Metrics: true}
}

// AjoConfigTemplate is appended to the SDK app.toml template
const AjoConfigTemplate = `
###############################################################################
###                             Ajo Configuration                           ###
###############################################################################

[ajo]

# Record committed pool activity (pools created, contributions, payouts,
# penalties, yield) in the Prometheus collector.
metrics = {{ .Ajo.Metrics }}
`

// ajoMetricsEnabled reads FlagAjoMetrics, falling back to the default when
// the key is absent
func ajoMetricsEnabled(appOpts servertypes.AppOptions) bool {
	if appOpts == nil {
		return DefaultAjoConfig().Metrics
	}
	v := appOpts.Get(FlagAjoMetrics)
	if v == nil {
		return DefaultAjoConfig().Metrics
	}
	return cast.ToBool(v)
}
