package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"eventsCollection": "events",
			"placesCollection": "places",
		},
		"locator": map[string]any{
			"processAll": false,
			"idleWait":   "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_EVENTSCOLLECTION", want: "mongo.eventsCollection"},
		{envKey: "MONGO_PLACESCOLLECTION", want: "mongo.placesCollection"},
		{envKey: "LOCATOR_PROCESSALL", want: "locator.processAll"},
		{envKey: "LOCATOR_IDLEWAIT", want: "locator.idleWait"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
