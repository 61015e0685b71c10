package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteDefaultsToShopping(t *testing.T) {
	var nilDecision *Decision
	assert.Equal(t, IntentShopping, nilDecision.Route())
	assert.Equal(t, IntentShopping, (&Decision{}).Route())
	assert.Equal(t, IntentShopping, (&Decision{Intent: "weather"}).Route())
}

func TestRoutePassesKnownIntents(t *testing.T) {
	assert.Equal(t, IntentRecommend, (&Decision{Intent: IntentRecommend}).Route())
	assert.Equal(t, IntentCompare, (&Decision{Intent: IntentCompare}).Route())
	assert.Equal(t, IntentShopping, (&Decision{Intent: IntentShopping}).Route())
}
