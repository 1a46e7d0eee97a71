package receipts

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

//*******************************************
// ticket receipts
//*******************************************

var ErrEmptyJourney = errors.New("receipts: journey has no legs")

// Receipt is the printable content of one issued ticket.
type Receipt struct {
	Origin      string
	Destination string
	Legs        []ReceiptLeg
	TotalPrice  int32
}

type ReceiptLeg struct {
	From      string
	To        string
	Departure string
	Arrival   string
	Price     int32
}

const total_price_key = "TOTAL_PRICE="

// Issue writes one receipt file into dir and returns its path. The file
// closes with a TOTAL_PRICE= line, followed by a separator rule, that the
// aggregation pass keys on.
func Issue(receipt Receipt, dir string) (string, error) {
	if len(receipt.Legs) == 0 {
		return "", ErrEmptyJourney
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("receipt_%s_%s.txt", timestamp, uuid.NewString()[:8])
	file := filepath.Join(dir, name)

	var content strings.Builder
	content.WriteString("========== RECEIPT ==========\n")
	content.WriteString("Journey: " + receipt.Origin + " -> " + receipt.Destination + "\n")
	content.WriteString("Issued: " + time.Now().Format("02.01.2006 15:04") + "\n\n")
	content.WriteString("LEG DETAILS:\n")
	for _, leg := range receipt.Legs {
		content.WriteString("- " + leg.From + " -> " + leg.To + "\n")
		content.WriteString("  Time: " + leg.Departure + " - " + leg.Arrival + "\n")
		content.WriteString(fmt.Sprintf("  Price: %.2f\n\n", float64(leg.Price)))
	}
	content.WriteString("=============================\n")
	content.WriteString(fmt.Sprintf("%s%.2f\n", total_price_key, float64(receipt.TotalPrice)))
	content.WriteString("=============================\n")

	if err := os.WriteFile(file, []byte(content.String()), 0644); err != nil {
		return "", err
	}
	return file, nil
}

// Summary is the aggregation over all receipts in a directory.
type Summary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Summarize scans dir for receipt files and sums their totals. Files
// without a parsable total line are skipped.
func Summarize(dir string) (Summary, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Summary{}, nil
	}
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		total, ok := read_total(filepath.Join(dir, entry.Name()))
		if !ok {
			slog.Warn("skipping receipt without total line: " + entry.Name())
			continue
		}
		summary.Count += 1
		summary.Revenue += total
	}
	return summary, nil
}

func read_total(file string) (float64, bool) {
	f, err := os.Open(file)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, total_price_key) {
			continue
		}
		total, err := strconv.ParseFloat(strings.TrimSpace(line[len(total_price_key):]), 64)
		if err != nil {
			return 0, false
		}
		return total, true
	}
	return 0, false
}
