package offline

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/sbezverk/sortbench/report"
	"github.com/sbezverk/sortbench/sink"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// MaxRecordLen bounds the length prefix accepted by Read.
	MaxRecordLen = 16 * 1024 * 1024
	lenPrefix    = 4
)

var _ sink.Sink = &offSink{}

// offSink writes each series as a 4 byte big endian length followed by the
// protobuf encoding of the series.
type offSink struct {
	sync.Mutex
	file *os.File
	w    *bufio.Writer
}

func (o *offSink) Publish(ctx context.Context, s *report.Series) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st, err := sink.Encode(s)
	if err != nil {
		return err
	}
	b, err := proto.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal series %s with error: %w", s.Name, err)
	}
	lb := make([]byte, lenPrefix)
	binary.BigEndian.PutUint32(lb, uint32(len(b)))

	o.Lock()
	defer o.Unlock()
	if _, err := o.w.Write(lb); err != nil {
		return fmt.Errorf("failed to write length of the record with error: %w", err)
	}
	if _, err := o.w.Write(b); err != nil {
		return fmt.Errorf("failed to write the record with error: %w", err)
	}
	glog.V(5).Infof("wrote %d bytes record for series %s to %s", len(b), s.Name, o.file.Name())

	return o.w.Flush()
}

func (o *offSink) Close() error {
	o.Lock()
	defer o.Unlock()
	if err := o.w.Flush(); err != nil {
		o.file.Close()
		return err
	}
	return o.file.Close()
}

// New creates, or truncates, the record file fn.
func New(fn string) (sink.Sink, error) {
	f, err := os.Create(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to create offline report file %s with error: %w", fn, err)
	}

	return &offSink{
		file: f,
		w:    bufio.NewWriter(f),
	}, nil
}

// Read returns all series stored in the record file fn in the order they were written.
func Read(fn string) ([]*report.Series, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to open offline report file %s with error: %w", fn, err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Decode reads length prefixed series records from r until EOF.
func Decode(r io.Reader) ([]*report.Series, error) {
	series := make([]*report.Series, 0)
	lb := make([]byte, lenPrefix)
	for {
		if _, err := io.ReadFull(r, lb); err != nil {
			if errors.Is(err, io.EOF) {
				glog.V(5).Infof("processing offline report file completed, %d records", len(series))
				return series, nil
			}
			return nil, fmt.Errorf("failed to read length of the record with error: %w", err)
		}
		l := binary.BigEndian.Uint32(lb)
		if l > MaxRecordLen {
			return nil, fmt.Errorf("record length %d exceeds maximum %d", l, MaxRecordLen)
		}
		b := make([]byte, l)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("failed to read the record with error: %w", err)
		}
		st := &structpb.Struct{}
		if err := proto.Unmarshal(b, st); err != nil {
			return nil, fmt.Errorf("%w: %w", sink.ErrDecodeSeries, err)
		}
		s, err := sink.Decode(st)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
}
