package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", ""},
		{"8", "+7 (8"},
		{"8999", "+7 (999"},
		{"89991", "+7 (999) 1"},
		{"8999123", "+7 (999) 123"},
		{"899912345", "+7 (999) 123-45"},
		{"89991234567", "+7 (999) 123-45-67"},
		{"8 (999) 123-45-67", "+7 (999) 123-45-67"},
		{"+7 999 123 45 67 89", "+7 (999) 123-45-67"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPhone(tc.input))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		price int
		want  string
	}{
		{0, "0 ₽"},
		{500, "500 ₽"},
		{7500, "7 500 ₽"},
		{22000, "22 000 ₽"},
		{1000000, "1 000 000 ₽"},
		{-500, "-500 ₽"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.price))
		})
	}
}
