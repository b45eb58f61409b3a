package words

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/robalobadob/wordhunt/internal/dictdb"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewNormalizesAndFilters(t *testing.T) {
	d := New([]string{" Şəhər ", "ŞƏHƏR", "a", "", "12", "Ev!", "ev", "su-yu"})
	assert.Equal(t, []string{"ev", "suyu", "şəhər"}, d.Words())
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("EV"))
	assert.False(t, d.Contains("a"))
}

func TestWordsReturnsCopy(t *testing.T) {
	d := New([]string{"ev", "su"})
	w := d.Words()
	w[0] = "zz"
	assert.Equal(t, []string{"ev", "su"}, d.Words())
}

func TestFingerprint(t *testing.T) {
	a := New([]string{"ev", "su"})
	b := New([]string{"SU", "ev", "ev"})
	c := New([]string{"ev", "od"})
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)
}

func TestLetters(t *testing.T) {
	d := New([]string{"ab", "ba", "ca"})
	assert.Equal(t, []rune("aaabbc"), d.Letters())
}

func TestDefault(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	assert.Greater(t, d.Len(), 50)
	assert.True(t, d.Contains("şəhər"))
	assert.Same(t, d, Default())
	for _, w := range d.Words() {
		assert.GreaterOrEqual(t, len([]rune(w)), MinLength, w)
	}
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "words.txt", "# comment\nEv\n\n  su \nA\nŞəhər\n")
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ev", "su", "şəhər"}, d.Words())
}

func TestLoadCSVSkipsHeader(t *testing.T) {
	path := writeFile(t, "words.csv", "söz,məna\nEv,house\nsu,water\n\"Gül\",rose\n,empty\n")
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ev", "gül", "su"}, d.Words())
	assert.False(t, d.Contains("söz"))
}

func TestLoadSpreadsheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := []string{"Söz", "Ağac", "DƏNİZ", "x", "Quş"}
	for i, v := range rows {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), v))
	}
	require.NoError(t, f.SetCellValue(sheet, "B2", "ignored"))
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ağac", "dəniz", "quş"}, d.Words())
}

func TestLoadDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.db")
	st, err := dictdb.Open(path)
	require.NoError(t, err)
	_, err = st.Import(context.Background(), []string{"ev", "su"})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ev", "su"}, d.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadLegacyExcelRejected(t *testing.T) {
	path := writeFile(t, "words.xls", "\xd0\xcf\x11\xe0\xa1\xb1\x1a\xe1Root Entry\x00\nWorkbook\nkitab\n")
	d, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, d)
	assert.Contains(t, err.Error(), ".xlsx")
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, "empty.txt", "# nothing\na\n1\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmpty)
}
