package hr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeList_AcceptedEnvelopes(t *testing.T) {
	want := []Employee{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 2, FirstName: "Grace", LastName: "Hopper"},
	}

	tests := []struct {
		name string
		body string
	}{
		{
			name: "bare array",
			body: `[{"id":1,"first_name":"Ada","last_name":"Lovelace"},{"id":2,"first_name":"Grace","last_name":"Hopper"}]`,
		},
		{
			name: "data envelope",
			body: `{"data":[{"id":1,"first_name":"Ada","last_name":"Lovelace"},{"id":2,"first_name":"Grace","last_name":"Hopper"}]}`,
		},
		{
			name: "resource-named envelope",
			body: `{"employees":[{"id":1,"first_name":"Ada","last_name":"Lovelace"},{"id":2,"first_name":"Grace","last_name":"Hopper"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ok := decodeList[Employee]([]byte(tt.body), "employees")
			assert.True(t, ok)
			assert.Equal(t, want, items)
		})
	}
}

func TestDecodeList_UnexpectedShapeYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unrelated object", body: `{"unexpected":true}`},
		{name: "data not an array", body: `{"data":"oops"}`},
		{name: "scalar", body: `42`},
		{name: "garbage", body: `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ok := decodeList[Employee]([]byte(tt.body), "employees")
			assert.False(t, ok)
			assert.Empty(t, items)
		})
	}
}

func TestDecodeList_EmptyEnvelope(t *testing.T) {
	items, ok := decodeList[Team]([]byte(`{"teams":[]}`), "teams")
	assert.True(t, ok)
	assert.Empty(t, items)
}
