package dna

import (
	"bufio"
	"io"
	"strings"
)

// Sequence lines longer than this abort the parse rather than truncating.
const maxFastaLine = 4 * 1024 * 1024

// Record is a single FASTA record: a header line and its concatenated
// sequence lines.
type Record struct {
	Header   string
	Sequence string
}

// ReadFasta reads FASTA records from r. Lines beginning with '>' start a new
// record; subsequent lines are appended to its sequence. Parsing is kept
// simple and conservative; content before the first header is ignored. A
// read failure or an over-long line returns an error instead of a partial
// record set.
func ReadFasta(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxFastaLine)
	var records []Record
	var current Record
	inRecord := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if inRecord {
				records = append(records, current)
			}
			current = Record{Header: strings.TrimSpace(line[1:])}
			inRecord = true
		} else if inRecord {
			current.Sequence += line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if inRecord {
		records = append(records, current)
	}
	return records, nil
}
