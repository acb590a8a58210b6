package services_test

import (
	"testing"

	"anjett/contexts/community-kitchen/submission-service/domain/services"
)

func TestDetectPersonalInfo(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"phone with dashes", "call me at 555-123-4567", true},
		{"phone with dots", "reach 555.123.4567 anytime", true},
		{"at symbol", "chef@example", true},
		{"word address", "my address is secret", true},
		{"word street", "42 wallaby street", true},
		{"word email", "send an EMAIL please", true},
		{"plain recipe text", "mix yogurt and honey then freeze", false},
		{"short number run", "use 350 degrees for 20 minutes", false},
	}
	for _, tc := range cases {
		if got := services.DetectPersonalInfo(tc.text); got != tc.want {
			t.Errorf("%s: DetectPersonalInfo(%q) = %v, want %v", tc.name, tc.text, got, tc.want)
		}
	}
}
