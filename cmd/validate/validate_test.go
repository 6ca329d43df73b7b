package validate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/currency-csv/cmd/root"
	"fjacquet/currency-csv/cmd/validate"
	"fjacquet/currency-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	root.Cmd.AddCommand(validate.Cmd)
	os.Exit(m.Run())
}

func TestValidateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "validate", validate.Cmd.Use)
	assert.Contains(t, validate.Cmd.Short, "can be converted")
	assert.NotNil(t, validate.Cmd.Flags().Lookup("field"))
}

func TestValidateCommand_Execute(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CURRCSV_DATA_DIRECTORY", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.csv"), []byte("Name|Price\nTea|₹120.00\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("Name|Cost\nTea|₹120.00\n"), 0600))

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)

	root.Cmd.SetArgs([]string{"validate", "-i", "good.csv", "--field", "2"})
	require.NoError(t, root.Cmd.Execute())
	assert.Contains(t, out.String(), "good.csv is valid: 1 rows in INR (₹)")

	root.Cmd.SetArgs([]string{"validate", "-i", "bad.csv", "--field", "2"})
	err := root.Cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, parsererror.KindStructural, parsererror.KindOf(err))
}
