package approval_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	approval "github.com/viant/cmdchain/service/approval"
)

const leaveYAML = `name: leave
handlers:
  - name: director
    approver: Tom
    below: 8
  - name: projectManager
    approver: Bob
    below: 16
  - name: divisionManager
    approver: Mark
    expression: magnitude < 32
  - name: president
    approver: Alice
    below: 50
order: [director, projectManager, divisionManager, president]
`

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/cmdchain/leave.yaml"
	if !assert.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(leaveYAML))) {
		return
	}
	config, err := approval.LoadConfig(ctx, fs, URL)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "leave", config.Name)
	assert.Len(t, config.Handlers, 4)

	chain, err := config.Build()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []string{"director", "projectManager", "divisionManager", "president"}, chain.Order())
	handler, ok := chain.Handler("divisionManager")
	assert.True(t, ok)
	assert.Equal(t, "Mark", handler.Approver)

	outcome := chain.Dispatch(ctx, &approval.Request{Magnitude: 20})
	assert.Equal(t, "divisionManager", outcome.Handler)

	_, err = approval.LoadConfig(ctx, fs, "mem://localhost/cmdchain/missing.yaml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	eight := 8
	var testCases = []struct {
		description string
		config      *approval.Config
		expectErr   bool
	}{
		{
			description: "valid below",
			config:      &approval.Config{Handlers: []approval.HandlerConfig{{Name: "A", Below: &eight}}},
		},
		{
			description: "valid expression",
			config:      &approval.Config{Handlers: []approval.HandlerConfig{{Name: "A", Expression: "magnitude < 8"}}},
		},
		{
			description: "both predicates",
			config:      &approval.Config{Handlers: []approval.HandlerConfig{{Name: "A", Below: &eight, Expression: "magnitude < 8"}}},
			expectErr:   true,
		},
		{
			description: "no predicate",
			config:      &approval.Config{Handlers: []approval.HandlerConfig{{Name: "A"}}},
			expectErr:   true,
		},
		{
			description: "missing name",
			config:      &approval.Config{Handlers: []approval.HandlerConfig{{Below: &eight}}},
			expectErr:   true,
		},
		{
			description: "duplicate names",
			config: &approval.Config{Handlers: []approval.HandlerConfig{
				{Name: "A", Below: &eight},
				{Name: "A", Expression: "magnitude < 3"},
			}},
			expectErr: true,
		},
		{
			description: "duplicate order entries",
			config: &approval.Config{
				Handlers: []approval.HandlerConfig{{Name: "A", Below: &eight}},
				Order:    []string{"A", "A"},
			},
			expectErr: true,
		},
		{
			description: "no handlers",
			config:      &approval.Config{Name: "empty"},
			expectErr:   true,
		},
		{
			description: "nil",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := testCase.config.Validate()
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_Build(t *testing.T) {
	eight, sixteen := 8, 16
	config := &approval.Config{
		Handlers: []approval.HandlerConfig{
			{Name: "A", Below: &eight},
			{Name: "B", Below: &sixteen},
		},
		Order: []string{"B", "A"},
	}
	chain, err := config.Build()
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, chain.Order())

	config.Order = []string{"A", "Z"}
	_, err = config.Build()
	assert.ErrorIs(t, err, approval.ErrUnknownHandler)

	config.Order = nil
	config.Handlers[1].Below = nil
	config.Handlers[1].Expression = "magnitude +"
	_, err = config.Build()
	assert.Error(t, err)

	decoded, err := approval.DecodeConfig([]byte("handlers:\n  - name: A\n    below: 8\n"))
	assert.NoError(t, err)
	chain, err = decoded.Build()
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, chain.Order())

	_, err = approval.DecodeConfig([]byte("handlers: [{name: A}]"))
	assert.Error(t, err)
}
