package usecase

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/polkiloo/resi/internal/domain/model"
)

// CSVHeader is the first line of every export.
const CSVHeader = "nomor_resi,nama_barang,nama_toko,jasa_kirim,tanggal"

const csvColumns = 5

var lineBreak = regexp.MustCompile(`\r?\n`)

// csvRecord is one data line of an import file, fields already trimmed.
type csvRecord struct {
	Line   int
	Fields [csvColumns]string
}

// encodeCSV renders receipts as plain comma separated lines.
// Fields are not quoted, so values containing commas do not round trip.
func encodeCSV(receipts []model.Receipt) []byte {
	var buf bytes.Buffer
	buf.WriteString(CSVHeader)
	buf.WriteByte('\n')
	for _, r := range receipts {
		buf.WriteString(strings.Join([]string{
			r.TrackingNumber,
			deref(r.ItemName),
			deref(r.StoreName),
			deref(r.Courier),
			model.FormatDate(r.Date),
		}, ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// decodeCSV splits data into records. Blank lines are dropped and the first
// remaining line is treated as a header. Missing trailing fields are empty and
// extra fields are ignored.
func decodeCSV(data []byte) []csvRecord {
	text := strings.ToValidUTF8(string(data), "\uFFFD")
	text = strings.TrimPrefix(text, "\uFEFF")

	var records []csvRecord
	headerSeen := false
	for i, line := range lineBreak.Split(text, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		rec := csvRecord{Line: i + 1}
		for j, field := range strings.Split(line, ",") {
			if j >= csvColumns {
				break
			}
			rec.Fields[j] = strings.TrimSpace(field)
		}
		records = append(records, rec)
	}
	return records
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
