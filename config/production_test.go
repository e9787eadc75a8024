package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *ProductionConfig {
	return &ProductionConfig{
		Server:  ServerConfig{Port: 8080},
		Catalog: CatalogConfig{PricesPath: "prices_updated.xlsx", ResultLimit: 4},
		Policy:  PolicyConfig{RouteRanking: RankingKeywordScore, CostRule: CostRuleSuffix},
	}
}

func TestValidateProductionConfig(t *testing.T) {
	require.NoError(t, ValidateProductionConfig(validConfig()))

	cases := []struct {
		name    string
		mutate  func(*ProductionConfig)
		message string
	}{
		{"BadPort", func(c *ProductionConfig) { c.Server.Port = 0 }, "invalid server port"},
		{"MissingPricesPath", func(c *ProductionConfig) { c.Catalog.PricesPath = "" }, "prices path"},
		{"ZeroResultLimit", func(c *ProductionConfig) { c.Catalog.ResultLimit = 0 }, "result limit"},
		{"UnknownRanking", func(c *ProductionConfig) { c.Policy.RouteRanking = "alphabetical" }, "route ranking policy"},
		{"UnknownCostRule", func(c *ProductionConfig) { c.Policy.CostRule = "regex" }, "cost rule"},
		{"DatabaseWithoutName", func(c *ProductionConfig) {
			c.Database.Host = "db.internal"
			c.Database.Name = ""
		}, "database name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := ValidateProductionConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestValidateProductionConfigAcceptsTransitTimePolicy(t *testing.T) {
	cfg := validConfig()
	cfg.Policy.RouteRanking = RankingTransitTime
	cfg.Policy.CostRule = CostRuleKeyword
	assert.NoError(t, ValidateProductionConfig(cfg))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FQ_TEST_STRING", "hello")
	t.Setenv("FQ_TEST_INT", "42")
	t.Setenv("FQ_TEST_BOOL", "true")
	t.Setenv("FQ_TEST_DURATION", "90s")
	t.Setenv("FQ_TEST_SLICE", "a, b ,c")

	assert.Equal(t, "hello", getEnvString("FQ_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnvString("FQ_TEST_UNSET", "fallback"))
	assert.Equal(t, 42, getEnvInt("FQ_TEST_INT", 7))
	assert.Equal(t, true, getEnvBool("FQ_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, getEnvDuration("FQ_TEST_DURATION", time.Minute))
	assert.Equal(t, []string{"a", "b", "c"}, getEnvStringSlice("FQ_TEST_SLICE", nil))

	t.Setenv("FQ_TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("FQ_TEST_INT", 7))
}
