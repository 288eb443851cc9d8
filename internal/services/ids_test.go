package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseItemID(t *testing.T) {
	tests := []struct {
		token  string
		want   ItemID
		wantOK bool
	}{
		{token: "7", want: 7, wantOK: true},
		{token: " 42 ", want: 42, wantOK: true},
		{token: "007", want: 7, wantOK: true},
		{token: "0", wantOK: false},
		{token: "-3", wantOK: false},
		{token: "+3", wantOK: false},
		{token: "abc", wantOK: false},
		{token: "1.5", wantOK: false},
		{token: "12abc", wantOK: false},
		{token: "", wantOK: false},
		{token: "   ", wantOK: false},
		{token: "0x10", wantOK: false},
		{token: "99999999999999999999999999", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.token), func(t *testing.T) {
			got, ok := ParseItemID(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseItemIDs(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []ItemID
	}{
		{name: "nil", tokens: nil, want: []ItemID{}},
		{name: "duplicates", tokens: []string{"5", "5", "5"}, want: []ItemID{5}},
		{name: "malformed dropped", tokens: []string{"abc", "-3", "0", "7"}, want: []ItemID{7}},
		{name: "first occurrence order", tokens: []string{"3", "1", "3", "2", "1"}, want: []ItemID{3, 1, 2}},
		{name: "same id different spelling", tokens: []string{"4", "04", " 4"}, want: []ItemID{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseItemIDs(tt.tokens))
		})
	}
}
