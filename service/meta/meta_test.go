package meta

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestExpandEnv(t *testing.T) {
	var testCases = []struct {
		description string
		env         map[string]string
		input       string
		expect      string
	}{
		{description: "no references", input: "just a plain string", expect: "just a plain string"},
		{description: "single reference", env: map[string]string{"CMDCHAIN_FOO": "bar"}, input: "value is ${env.CMDCHAIN_FOO}", expect: "value is bar"},
		{description: "repeated references", env: map[string]string{"CMDCHAIN_A": "1", "CMDCHAIN_B": "2"}, input: "${env.CMDCHAIN_A}-${env.CMDCHAIN_B}-${env.CMDCHAIN_A}", expect: "1-2-1"},
		{description: "unset variable", input: "unset=${env.CMDCHAIN_NOTSET}-end", expect: "unset=-end"},
		{description: "missing closing brace", env: map[string]string{"CMDCHAIN_X": "x"}, input: "start ${env.CMDCHAIN_X and ${env.CMDCHAIN_Y} end", expect: "start ${env.CMDCHAIN_X and  end"},
		{description: "empty key", input: "oops ${env.} done", expect: "oops  done"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, testCase.expect, ExpandEnv(testCase.input))
		})
	}
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	t.Setenv("CMDCHAIN_LIMIT", "12")
	URL := "mem://localhost/cmdchain/meta/doc.yaml"
	assert.NoError(t, afs.New().Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("limit: ${env.CMDCHAIN_LIMIT}\nname: demo\n")))

	doc := struct {
		Limit int    `yaml:"limit"`
		Name  string `yaml:"name"`
	}{}
	assert.NoError(t, New(nil).Load(ctx, URL, &doc))
	assert.Equal(t, 12, doc.Limit)
	assert.Equal(t, "demo", doc.Name)

	assert.Error(t, New(nil).Load(ctx, "mem://localhost/cmdchain/meta/none.yaml", &doc))
}
