package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuideSlug(t *testing.T) {
	tests := map[string]string{
		"VIAJE YUNO":                "viaje-uno",
		"  Recálculo ":              "recalculo",
		"":                          DefaultGuideSlug,
		"Reembolso Años Anteriores": "reembolso-anos-anteriores",
		"Cobro  --  Doble!!":        "cobro-doble",
	}
	for in, want := range tests {
		assert.Equal(t, want, GuideSlug(in), "input %q", in)
	}
}

func TestGuideName(t *testing.T) {
	assert.Equal(t, "VIAJE YUNO", GuideName("viaje-uno"))
	assert.Equal(t, "Cobro Doble", GuideName("cobro-doble"))
	assert.Equal(t, "Unknown Guide", GuideName(""))
}
