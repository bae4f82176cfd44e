package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	n := int64(4)
	var boxed any = &n
	assert.Equal(t, int64(4), Deref(&boxed))
	assert.Nil(t, Deref((*string)(nil)))
	assert.Nil(t, Deref(nil))
	assert.Equal(t, "x", Deref("x"))
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 7, 7},
		{"Int64", int64(42), 42},
		{"Uint8", uint8(3), 3},
		{"Float", 2.9, 2},
		{"String", " 12 ", 12},
		{"Bytes", []byte("5"), 5},
		{"Garbage", "abc", 0},
		{"Nil", nil, 0},
		{"Unsupported", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "text", ToString("text"))
	assert.Equal(t, "varchar(36)", ToString([]byte("varchar(36)")))
	assert.Equal(t, "9", ToString(int64(9)))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"Bool", true, true},
		{"One", int64(1), true},
		{"Zero", int64(0), false},
		{"Yes", "YES", true},
		{"No Bytes", []byte("NO"), false},
		{"True String", "true", true},
		{"Empty", "", false},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBool(tt.in))
		})
	}
}
