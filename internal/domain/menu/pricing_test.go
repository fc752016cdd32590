package menu_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub/internal/domain"
	"github.com/jhoicas/foodhub/internal/domain/entity"
	"github.com/jhoicas/foodhub/internal/domain/menu"
)

func items(prices ...int64) []entity.MenuItem {
	out := make([]entity.MenuItem, 0, len(prices))
	for _, p := range prices {
		out = append(out, entity.MenuItem{Price: decimal.NewFromInt(p)})
	}
	return out
}

func TestAverage(t *testing.T) {
	cases := []struct {
		name  string
		items []entity.MenuItem
		want  string
	}{
		{"vacío", nil, "0.00"},
		{"dos platos", items(65, 78), "71.50"},
		{"entradas semilla", items(65, 78, 62, 61), "66.50"},
		{"postres semilla", items(90, 79, 72, 68), "77.25"},
		{"redondeo", []entity.MenuItem{{Price: decimal.NewFromInt(1)}, {Price: decimal.NewFromInt(1)}, {Price: decimal.NewFromInt(2)}}, "1.33"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, menu.Average(tc.items))
		})
	}
}

func TestTotal(t *testing.T) {
	lines := []entity.OrderLine{
		{Course: entity.CourseStarters, Item: entity.MenuItem{ID: "s1", Price: decimal.NewFromInt(65)}},
		{Course: entity.CourseStarters, Item: entity.MenuItem{ID: "s2", Price: decimal.NewFromInt(78)}},
	}
	assert.True(t, decimal.NewFromInt(143).Equal(menu.Total(lines)))
	assert.True(t, menu.Total(nil).IsZero())
}

func TestParseEditPrice(t *testing.T) {
	cases := map[string]string{
		"":      "0",
		"abc":   "0",
		"  42 ": "42",
		"12.5":  "12.5",
		"-3":    "0",
	}
	for in, want := range cases {
		got := menu.ParseEditPrice(in)
		assert.Equal(t, want, got.String(), "entrada %q", in)
	}
}

func TestParseNewPrice(t *testing.T) {
	d, err := menu.ParseNewPrice("50")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(d))

	for _, bad := range []string{"", "   ", "abc", "12abc", "NaN", "-1"} {
		_, err := menu.ParseNewPrice(bad)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "entrada %q debe ser rechazada", bad)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R143", menu.FormatPrice("R", decimal.NewFromInt(143)))
	assert.Equal(t, "R71.5", menu.FormatPrice("R", decimal.RequireFromString("71.50")))
}
