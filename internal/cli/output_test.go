package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Success(map[string]string{"result": "success"}, nil)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	err := formatter.Success(nil, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}

func TestOutputFormatter_JSONFail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Fail(fmt.Errorf("%w: payroll", core.ErrPageNotFound))
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PAGE001", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestOutputFormatter_TextFail(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut, Verbose: true}

	err := formatter.Fail(errors.New("dial tcp: connection refused"))
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Reported)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error [DB004]")
	assert.Contains(t, errOut.String(), "Details: dial tcp: connection refused")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(&ExitError{Code: ExitCommandError, Err: errors.New("bad")}))
}

func TestTextTable_Alignment(t *testing.T) {
	tbl := &textTable{
		Headers: []string{"Name", "Amount"},
		Align:   []datatable.Align{datatable.AlignLeft, datatable.AlignRight},
		Rows:    [][]string{{"a", "1"}, {"bb", "1,000"}},
	}
	lines := bytes.Split([]byte(tbl.Render()), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 4)

	// Right-aligned cells end at the same column.
	assert.Contains(t, string(lines[2]), "     1 ")
	assert.Contains(t, string(lines[3]), " 1,000 ")
	assert.Equal(t, len([]rune(string(lines[2]))), len([]rune(string(lines[3]))))
}
