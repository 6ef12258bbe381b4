package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production") // skip .env loading
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SITES", "")
	t.Setenv("UTM_SOURCE_PREFIX", "")
	t.Setenv("EMAIL_PROVIDER", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "vaughn", cfg.UTMSourcePrefix)
	require.Equal(t, []string{"swankyboyz", "vaughnsterling"}, cfg.Sites)
	require.Equal(t, "noop", cfg.Email.Provider)
	require.Contains(t, cfg.DBUrl, "postgres://")
	require.False(t, cfg.MigrateOnStart)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("SITES", "swankyboyz, desertroads ,")
	t.Setenv("AMAZON_ASSOCIATE_TAG", "mytag-20")
	t.Setenv("ANALYTICS_TOKEN", "sekrit")
	t.Setenv("MIGRATE_ON_START", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, []string{"swankyboyz", "desertroads"}, cfg.Sites)
	require.Equal(t, "mytag-20", cfg.Affiliate.AmazonAssociateTag)
	require.Equal(t, "sekrit", cfg.AnalyticsToken)
	require.True(t, cfg.MigrateOnStart)
}
