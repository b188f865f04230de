package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeForBrand(t *testing.T) {
	custom := "#123456"
	empty := ""
	cases := []struct {
		brand  string
		custom *string
		want   Theme
	}{
		{"Indian Oil", &custom, Theme{"#003c7e", "#ff6600"}},
		{"HP", nil, Theme{"#0066cc", "#e31e24"}},
		{"BP", nil, Theme{"#00923f", "#ffed00"}},
		{"Nayara", &custom, Theme{"#123456", "#f59e0b"}},
		{"Nayara", &empty, Theme{"#1e40af", "#f59e0b"}},
		{"Shell", nil, Theme{"#1e40af", "#f59e0b"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ThemeForBrand(c.brand, c.custom), c.brand)
	}
}
