package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterRankedTieBreak(t *testing.T) {
	c := counter{"b": 2, "a": 2, "c": 5}
	assert.Equal(t, []rankEntry{
		{Nombre: "c", Cantidad: 5},
		{Nombre: "a", Cantidad: 2},
		{Nombre: "b", Cantidad: 2},
	}, c.ranked())
	assert.Equal(t, "c", c.mode())
	assert.Equal(t, 9, c.total())
}

func TestCounterTopCapsLength(t *testing.T) {
	c := counter{"a": 1, "b": 2, "c": 3}
	assert.Len(t, c.top(2), 2)
	assert.Len(t, c.top(10), 3)
	assert.Equal(t, "", counter{}.mode())
}

func TestMonthCounterViews(t *testing.T) {
	m := monthCounter{1: 3, 6: 3, 12: 1}

	assert.Equal(t, []monthCount{
		{Mes: 1, Cantidad: 3},
		{Mes: 6, Cantidad: 3},
		{Mes: 12, Cantidad: 1},
	}, m.byMonth())

	// Ties go to the earlier month in both directions.
	assert.Equal(t, []int{1, 6, 12}, m.topMonths(3))
	assert.Equal(t, []int{12, 1, 6}, m.bottomMonths(3))
	assert.Equal(t, []int{1}, m.topMonths(1))
}
