package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGenres(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
		want   string
	}{
		{name: "orders preserved", genres: []string{"Jazz", "Blues"}, want: "Jazz,Blues"},
		{name: "blank entries dropped", genres: []string{"Jazz", "", "  ", "Soul"}, want: "Jazz,Soul"},
		{name: "whitespace trimmed", genres: []string{" Rock n Roll ", "Funk"}, want: "Rock n Roll,Funk"},
		{name: "empty set", genres: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeGenres(tt.genres))
		})
	}
}

func TestDecodeGenres(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "orders preserved", in: "Jazz,Blues", want: []string{"Jazz", "Blues"}},
		{name: "blank entries dropped", in: "Jazz,,Soul", want: []string{"Jazz", "Soul"}},
		{name: "empty string", in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeGenres(tt.in))
		})
	}
}

func TestGenresRoundTrip(t *testing.T) {
	in := []string{"Jazz", "Blues", "Musical Theatre"}
	assert.Equal(t, in, decodeGenres(encodeGenres(in)))
}
