package receipts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample_receipt() Receipt {
	return Receipt{
		Origin:      "grad_0_0",
		Destination: "grad_0_1",
		Legs: []ReceiptLeg{
			{From: "A_0_0", To: "A_0_1", Departure: "08:00", Arrival: "09:00", Price: 10},
		},
		TotalPrice: 10,
	}
}

func TestIssueAndSummarize(t *testing.T) {
	dir := t.TempDir()

	file, err := Issue(sample_receipt(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(file))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "grad_0_0 -> grad_0_1")
	assert.Contains(t, text, "A_0_0 -> A_0_1")
	assert.Contains(t, text, "08:00 - 09:00")
	assert.Contains(t, text, "TOTAL_PRICE=10.00")

	second := sample_receipt()
	second.TotalPrice = 25
	_, err = Issue(second, dir)
	require.NoError(t, err)

	summary, err := Summarize(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 35.0, summary.Revenue)
}

func TestIssueRejectsEmptyJourney(t *testing.T) {
	_, err := Issue(Receipt{Origin: "a", Destination: "b"}, t.TempDir())
	assert.ErrorIs(t, err, ErrEmptyJourney)
}

func TestSummarizeSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("not a receipt"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("TOTAL_PRICE=abc\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.json"), []byte("{}"), 0644))

	_, err := Issue(sample_receipt(), dir)
	require.NoError(t, err)

	summary, err := Summarize(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 10.0, summary.Revenue)
}

func TestSummarizeMissingDir(t *testing.T) {
	summary, err := Summarize(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}

func TestReceiptFileNamesAreUnique(t *testing.T) {
	dir := t.TempDir()
	names := map[string]bool{}
	for i := 0; i < 5; i++ {
		file, err := Issue(sample_receipt(), dir)
		require.NoError(t, err)
		base := filepath.Base(file)
		assert.True(t, strings.HasPrefix(base, "receipt_"))
		assert.False(t, names[base])
		names[base] = true
	}
}
