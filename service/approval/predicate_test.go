package approval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	approval "github.com/viant/cmdchain/service/approval"
)

func TestExpression(t *testing.T) {
	var testCases = []struct {
		description string
		expr        string
		request     *approval.Request
		expect      bool
		expectErr   bool
		evalErr     bool
	}{
		{description: "magnitude below", expr: "magnitude < 16", request: &approval.Request{Magnitude: 10}, expect: true},
		{description: "magnitude at bound", expr: "magnitude < 16", request: &approval.Request{Magnitude: 16}, expect: false},
		{description: "kind and magnitude", expr: `magnitude < 32 && kind == "leave"`, request: &approval.Request{Magnitude: 20, Type: "leave"}, expect: true},
		{description: "kind mismatch", expr: `magnitude < 32 && kind == "leave"`, request: &approval.Request{Magnitude: 20, Type: "expense"}, expect: false},
		{description: "code prefix", expr: `code.startsWith("HR-")`, request: &approval.Request{Code: "HR-17"}, expect: true},
		{description: "description contains", expr: `description.contains("urgent")`, request: &approval.Request{Description: "urgent trip"}, expect: true},
		{description: "division by zero rejects", expr: "magnitude / 0 > 1", request: &approval.Request{Magnitude: 3}, expect: false, evalErr: true},
		{description: "non bool result", expr: "magnitude + 1", expectErr: true},
		{description: "unknown variable", expr: "amount < 5", expectErr: true},
		{description: "syntax error", expr: "magnitude <", expectErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			predicate, err := approval.Expression(testCase.expr)
			if testCase.expectErr {
				assert.Error(t, err)
				assert.Nil(t, predicate)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			accepted, err := predicate(testCase.request)
			assert.Equal(t, testCase.evalErr, err != nil)
			assert.Equal(t, testCase.expect, accepted)
		})
	}
}

func TestBelowAndAtMost(t *testing.T) {
	var testCases = []struct {
		description string
		predicate   approval.Predicate
		magnitude   int
		expect      bool
	}{
		{description: "below under", predicate: approval.Below(8), magnitude: 7, expect: true},
		{description: "below at bound", predicate: approval.Below(8), magnitude: 8},
		{description: "at most at bound", predicate: approval.AtMost(8), magnitude: 8, expect: true},
		{description: "at most over", predicate: approval.AtMost(8), magnitude: 9},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			accepted, err := testCase.predicate(&approval.Request{Magnitude: testCase.magnitude})
			assert.NoError(t, err)
			assert.Equal(t, testCase.expect, accepted)
		})
	}

	handler := approval.NewHandler("A", "a", nil)
	accepted, err := handler.Accepts(&approval.Request{})
	assert.NoError(t, err)
	assert.False(t, accepted)
}

func TestState(t *testing.T) {
	assert.Equal(t, "pending", approval.StatePending.String())
	assert.Equal(t, "approved", approval.StateApproved.String())
	assert.Equal(t, "exhausted", approval.StateExhausted.String())
	assert.Equal(t, "State(7)", approval.State(7).String())
	assert.False(t, approval.StatePending.Terminal())

	text, err := approval.StateExhausted.MarshalText()
	assert.NoError(t, err)
	var state approval.State
	assert.NoError(t, state.UnmarshalText(text))
	assert.Equal(t, approval.StateExhausted, state)
	assert.NoError(t, state.UnmarshalText([]byte("Approved")))
	assert.Equal(t, approval.StateApproved, state)
	assert.Error(t, state.UnmarshalText([]byte("rejected")))
}
