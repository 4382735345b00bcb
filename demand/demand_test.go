package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemand_Add(t *testing.T) {
	tests := []struct {
		name string
		a    Demand
		b    Demand
		want Demand
	}{
		{
			name: "bounded plus bounded",
			a:    Bounded(2),
			b:    Bounded(3),
			want: Bounded(5),
		},
		{
			name: "bounded plus zero",
			a:    Bounded(2),
			b:    None,
			want: Bounded(2),
		},
		{
			name: "bounded plus unbounded",
			a:    Bounded(2),
			b:    Unbounded(),
			want: Unbounded(),
		},
		{
			name: "unbounded plus bounded",
			a:    Unbounded(),
			b:    Bounded(7),
			want: Unbounded(),
		},
		{
			name: "unbounded plus unbounded",
			a:    Unbounded(),
			b:    Unbounded(),
			want: Unbounded(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Add(tt.b))
		})
	}
}

func TestDemand_Dec(t *testing.T) {
	assert.Equal(t, Bounded(2), Bounded(3).Dec())
	assert.Equal(t, Bounded(0), Bounded(1).Dec())
	assert.Equal(t, Unbounded(), Unbounded().Dec())
}

func TestDemand_DecUnderflowPanics(t *testing.T) {
	assert.Panics(t, func() {
		Bounded(0).Dec()
	})
}

func TestDemand_NegativeBoundPanics(t *testing.T) {
	assert.Panics(t, func() {
		Bounded(-1)
	})
}

func TestDemand_IsZero(t *testing.T) {
	assert.True(t, None.IsZero())
	assert.True(t, Bounded(0).IsZero())
	assert.False(t, Bounded(1).IsZero())
	assert.False(t, Unbounded().IsZero())
}

func TestDemand_ZeroValueIsNone(t *testing.T) {
	var d Demand
	assert.True(t, d.IsZero())
	assert.False(t, d.IsUnbounded())
}

func TestDemand_Cmp(t *testing.T) {
	tests := []struct {
		name string
		a    Demand
		b    Demand
		want int
	}{
		{name: "less", a: Bounded(1), b: Bounded(2), want: -1},
		{name: "equal", a: Bounded(2), b: Bounded(2), want: 0},
		{name: "greater", a: Bounded(3), b: Bounded(2), want: 1},
		{name: "bounded below unbounded", a: Bounded(1 << 30), b: Unbounded(), want: -1},
		{name: "unbounded above bounded", a: Unbounded(), b: Bounded(0), want: 1},
		{name: "unbounded equals unbounded", a: Unbounded(), b: Unbounded(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cmp(tt.b))
		})
	}
}

func TestDemand_Count(t *testing.T) {
	assert.Equal(t, 4, Bounded(4).Count())
	assert.Equal(t, 0, Unbounded().Count())
}

func TestDemand_String(t *testing.T) {
	assert.Equal(t, "unbounded", Unbounded().String())
	assert.Equal(t, "3", Bounded(3).String())
	assert.Equal(t, "0", None.String())
}
