package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	// Keys already present in the YAML tree keep their camelCase spelling;
	// unknown env keys fall back to plain dotted lowercase.
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"cityCache": map[string]any{
			"size": 0,
		},
		"dispatch": map[string]any{
			"mailWorkers": 0,
		},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"CITYCACHE_SIZE":           "cityCache.size",
		"DISPATCH_MAILWORKERS":     "dispatch.mailWorkers",
		"NEW_FEATURE_FLAG":         "new.feature.flag",
	}

	for envKey, want := range cases {
		assert.Equal(t, want, canonicalizeEnvKey(envKey, existing), envKey)
	}
}
