package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain_Print(t *testing.T) {
	type args struct {
		value interface{}
	}
	tests := []struct {
		name        string
		args        args
		expectedOut string
		expectedErr string
	}{
		{
			"simple string",
			args{"hello"},
			"hello\n",
			"",
		},
		{
			"int",
			args{1},
			"1\n",
			"",
		},
		{
			"float",
			args{1.1},
			"1.10\n",
			"",
		},
		{
			"boolean",
			args{true},
			"true\n",
			"",
		},
		{
			"string slice",
			args{[]string{"a", "b", "c"}},
			"\n - a\n - b\n - c\n",
			"",
		},
		{
			"pointer to struct",
			args{&struct{ V string }{"hello"}},
			"v: hello\n",
			"",
		},
		{
			"struct with serialized tags",
			args{struct {
				Application string `serialized:"application"`
				ContentPath string `serialized:"content"`
				hidden      string
			}{"/apps/studio", "/apps/content", "not shown"}},
			"application: /apps/studio\ncontent: /apps/content\n",
			"",
		},
		{
			"unsupported type",
			args{func() {}},
			"",
			"Could not print value, error: unknown type: func()\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outWriter := &bytes.Buffer{}
			errWriter := &bytes.Buffer{}

			plain, err := NewPlain(&Config{OutWriter: outWriter, ErrWriter: errWriter})
			require.NoError(t, err)

			plain.Print(tt.args.value)
			assert.Equal(t, tt.expectedOut, outWriter.String())
			assert.Equal(t, tt.expectedErr, errWriter.String())
		})
	}
}

func TestPlain_Error(t *testing.T) {
	outWriter := &bytes.Buffer{}
	errWriter := &bytes.Buffer{}

	plain, err := NewPlain(&Config{OutWriter: outWriter, ErrWriter: errWriter})
	require.NoError(t, err)

	plain.Error("gone wrong")
	assert.Empty(t, outWriter.String())
	assert.Equal(t, "gone wrong\n", errWriter.String())
}
