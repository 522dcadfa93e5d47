package esrp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("datparser.esrp")

// Section identifiers of the file format.
const (
	scanPrefix  = "Scan"
	tracePrefix = "TRACE"
	valuesKey   = "Values"
)

// section is the classifier's running context.
type section uint8

const (
	sectionNone section = iota
	sectionScan
	sectionTrace
	// sectionTraceData is entered once the active trace's "Values" line has
	// been seen; subsequent lines are sample rows, not metadata.
	sectionTraceData
)

// ParseFile reads and parses the ESRP file at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, newError(KindNotFound, fmt.Sprintf("no such file: %s", path), err)
		case errors.Is(err, fs.ErrPermission):
			return nil, newError(KindPermission, fmt.Sprintf("cannot read file: %s", path), err)
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	file, err := parseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	file.Path = path
	return file, nil
}

// Parse parses ESRP source text from rd.
func Parse(rd io.Reader) (*File, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return parseBytes(data)
}

func parseBytes(data []byte) (*File, error) {
	text, err := decodeSource(data)
	if err != nil {
		return nil, err
	}

	p := &parser{file: &File{Metadata: Metadata{}}}
	for num, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := p.classify(line); err != nil {
			// Any classification failure discards the whole aggregate.
			return nil, structuralError(num+1, line, err)
		}
	}
	return p.file, nil
}

// parser is the line classifier. It keeps the currently open scan and trace
// as independent running contexts: entering a trace section does not close
// the active scan.
type parser struct {
	file    *File
	section section
	scan    *Scan
	trace   *Trace
}

func (p *parser) classify(line string) error {
	parts := splitLine(line)
	if len(parts) == 0 {
		return nil
	}
	key := parts[0]
	values := Values(parts[1:])

	switch {
	case isScanHeader(key):
		p.scan = newScan(strings.TrimSpace(strings.TrimSuffix(key, ":")))
		p.file.Scans = append(p.file.Scans, p.scan)
		p.trace = nil
		p.section = sectionScan

	case isTraceHeader(key):
		p.trace = newTrace()
		p.file.Traces = append(p.file.Traces, p.trace)
		p.section = sectionTrace

	case p.trace != nil:
		switch {
		case key == valuesKey:
			p.trace.Metadata[key] = values
			p.section = sectionTraceData
		case p.section == sectionTraceData:
			p.appendSample(parts)
		default:
			p.trace.Metadata[key] = values
		}

	case p.scan != nil:
		p.scan.Parameters[key] = values

	default:
		p.file.Metadata[key] = values
	}
	return nil
}

// appendSample interprets the first two segments of a sample row as an (x, y)
// pair. Malformed rows are dropped, not errors: one bad row must not discard
// an otherwise valid file.
func (p *parser) appendSample(parts []string) {
	if len(parts) < 2 {
		log.Debugf("dropping short sample row: %v", parts)
		return
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		log.Infof("dropping unparsable sample row: %q;%q", parts[0], parts[1])
		return
	}
	p.trace.Data.append(x, y)
}

// splitLine tokenizes a line on the ";" delimiter, trimming each segment and
// discarding empty ones. Trailing separators are tolerated.
func splitLine(line string) []string {
	var parts []string
	for _, part := range strings.Split(line, ";") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func isScanHeader(key string) bool {
	return strings.HasPrefix(key, scanPrefix) && strings.HasSuffix(key, ":")
}

func isTraceHeader(key string) bool {
	return strings.HasPrefix(key, tracePrefix)
}
