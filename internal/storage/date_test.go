package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2024-01-02", "2024-01-02", true},
		{" 2024-01-02 ", "2024-01-02", true},
		{"2024-01-02T00:00:00Z", "2024-01-02", true},
		{"2024-01-02T18:30:00.123+08:00", "2024-01-02", true},
		{"2024-01-02 08:15:00", "2024-01-02", true},
		{"2024/01/02", "2024-01-02", true},
		{"2024/1/2", "2024-01-02", true},
		{"2024.01.02", "2024-01-02", true},
		{"", "", false},
		{"yesterday", "", false},
		{"2024-13-40", "", false},
	}

	for _, c := range cases {
		got, ok := NormalizeDate(c.raw)
		assert.Equal(t, c.ok, ok, "raw=%q", c.raw)
		assert.Equal(t, c.want, got, "raw=%q", c.raw)
	}
}

func TestNormalizeDate_TimeOfDayCollapses(t *testing.T) {
	a, _ := NormalizeDate("2024-03-05T01:00:00Z")
	b, _ := NormalizeDate("2024-03-05 23:59:59")
	c, _ := NormalizeDate("2024/03/05")

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}
